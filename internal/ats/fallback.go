package ats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/skillsync/internal/types"
)

// actionVerbs is the fixed verb list the fallback analyzer scans for.
var actionVerbs = []string{
	"developed", "managed", "led", "created", "implemented",
	"designed", "achieved", "increased", "coordinated", "launched",
}

// fallbackSuggestions is returned unconditionally by the fallback analyzer.
var fallbackSuggestions = []string{
	"Incorporate more industry-specific technical keywords from the Job Description.",
	"Ensure your email and LinkedIn profile are hyperlinked correctly.",
	"Replace passive voice with active power verbs in your experience bullet points.",
	"Add a 'Certifications' or 'Projects' section to highlight continuous learning.",
	"Ensure consistent date formatting (e.g., month/year) throughout the document.",
}

// defaultStrengths is substituted when no heuristic strength qualifies.
var defaultStrengths = []string{"Clean layout", "Readable font size", "Proper file format"}

var numberRe = regexp.MustCompile(`\d+`)

// Fallback score refinement bounds and adjustments.
const (
	fallbackFloor        = 20
	verbBonusThreshold   = 5
	refinementBonus      = 5
	missingSectionLimit  = 2
	missingSectionMalus  = 10
	strongResumeCutoff   = 80
	quantifiedNumbersMin = 5
	quantifiedPercentMin = 1
)

// BuildFallbackReport produces the same report shape as the AI adapter using
// rule-based checks, and refines the baseline score. Invoked whenever the AI
// adapter is unavailable or fails.
func BuildFallbackReport(baseline *Baseline, text string) *types.AIReport {
	lower := strings.ToLower(text)

	foundVerbs := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			foundVerbs++
		}
	}

	numbersFound := len(numberRe.FindAllString(text, -1))
	percentFound := strings.Count(text, "%")
	quantified := numbersFound > quantifiedNumbersMin || percentFound > quantifiedPercentMin

	var strengths []string
	if baseline.Sections.HasSection("experience") {
		strengths = append(strengths, "Professional Experience section is well-structured.")
	}
	if foundVerbs > 3 {
		strengths = append(strengths, fmt.Sprintf("Strong vocabulary with %d powerful action verbs.", foundVerbs))
	}
	if quantified {
		strengths = append(strengths, "Excellent use of data and metrics to quantify achievements.")
	}
	if baseline.Sections.HasSection("skills") {
		strengths = append(strengths, "Comprehensive technical skills section detected.")
	}
	strengths = types.Truncate(strengths, types.MaxStrengths)
	if len(strengths) == 0 {
		strengths = defaultStrengths
	}

	var weaknesses []string
	if len(baseline.Sections.Missing) > 0 {
		weaknesses = append(weaknesses,
			fmt.Sprintf("Missing critical sections: %s.", strings.Join(baseline.Sections.Missing, ", ")))
	}
	if foundVerbs < 2 {
		weaknesses = append(weaknesses, "Weak impact verbs. Use words like 'Spearheaded' or 'Optimized'.")
	}
	if !quantified {
		weaknesses = append(weaknesses, "Achievements are vague. Add more numbers, percentages, or dollar amounts.")
	}
	if baseline.Keywords.Score < lowKeywordThreshold {
		weaknesses = append(weaknesses, "Low keyword density for modern automated screening systems.")
	}
	weaknesses = types.Truncate(weaknesses, types.MaxWeaknesses)

	refined := baseline.Score
	if foundVerbs > verbBonusThreshold {
		refined += refinementBonus
	}
	if quantified {
		refined += refinementBonus
	}
	if len(baseline.Sections.Missing) > missingSectionLimit {
		refined -= missingSectionMalus
	}
	if refined < fallbackFloor {
		refined = fallbackFloor
	}
	refined = types.ClampScore(refined)

	summary := "Consistent formatting, but needs more impact-driven language and keyword targeting."
	if refined > strongResumeCutoff {
		summary = "Impressive resume! Highly professional and optimized for modern ATS filters."
	}

	return &types.AIReport{
		Score:       refined,
		Summary:     summary,
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Suggestions: fallbackSuggestions,
	}
}
