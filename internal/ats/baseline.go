package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/skillsync/internal/types"
)

// Point contributions of the composite signals. These are additive points
// toward a 0-100 total, not normalized percentages; changing them changes
// observable scores.
const (
	keywordWeight      = 0.35
	sectionWeight      = 0.20
	formatPoints       = 10.0
	skillsListPoints   = 15.0
	contactPoints      = 10.0
	lengthInBandPoints = 10.0
	lengthOffBand      = 5.0
)

// Word-count band for the length signal.
const (
	minWordCount = 300
	maxWordCount = 1500
)

// lowKeywordThreshold marks keyword scores that trigger a critical advisory.
const lowKeywordThreshold = 50.0

// skillsListRe looks for a "skill"/"skills" header followed within ~200
// characters by a comma, bullet or newline, i.e. something list-shaped.
var skillsListRe = regexp.MustCompile(`(?i)skills?[\s\S]{0,200}(,|•|\n)`)

// Baseline is the deterministic composite score computed before any AI
// involvement, together with the signals that produced it.
type Baseline struct {
	Score        int
	Keywords     KeywordResult
	Sections     SectionResult
	WordCount    int
	Improvements []types.Improvement
}

// ComputeBaseline combines the weighted sub-scores into the 0-100 baseline
// and collects an improvement advisory for every underperforming signal.
func ComputeBaseline(text, jobDescription string) *Baseline {
	b := &Baseline{
		Keywords:  CheckKeywords(text, jobDescription),
		Sections:  CheckSections(text),
		WordCount: len(strings.Fields(text)),
	}

	total := b.Keywords.Score * keywordWeight

	if b.Keywords.Score < lowKeywordThreshold {
		b.advise(types.SeverityCritical,
			"Keyword matches are low. Add these from the JD: "+strings.Join(truncate(b.Keywords.Missing, 3), ", "))
	}

	total += b.Sections.Score * sectionWeight
	if len(b.Sections.Missing) > 0 {
		b.advise(types.SeverityMajor,
			fmt.Sprintf("Missing standard sections: %s. ATS might fail to parse your data.",
				strings.Join(b.Sections.Missing, ", ")))
	}

	// The document parsed, so the format signal always scores.
	total += formatPoints

	if skillsListRe.MatchString(text) {
		total += skillsListPoints
	} else {
		b.advise(types.SeverityMinor,
			`Could not clearly find a "Skills" section with a list. Use bullet points or commas.`)
	}

	if strings.Contains(text, "@") {
		total += contactPoints
	} else {
		b.advise(types.SeverityCritical,
			"We could not find an email address. Ensure it is not in a header/footer image.")
	}

	switch {
	case b.WordCount > minWordCount && b.WordCount < maxWordCount:
		total += lengthInBandPoints
	case b.WordCount < minWordCount:
		total += lengthOffBand
		b.advise(types.SeverityMinor, "Resume is very short. Elaborate on your experience.")
	default:
		total += lengthOffBand
		b.advise(types.SeverityMinor, "Resume might be too long (> 2 pages). Keep it concise.")
	}

	b.Score = types.ClampScore(int(math.Round(math.Min(total, 100))))
	return b
}

func (b *Baseline) advise(severity, text string) {
	b.Improvements = append(b.Improvements, types.Improvement{Type: severity, Text: text})
}
