// Package ats implements the resume scoring engine: keyword relevance,
// section completeness, the composite baseline score and the heuristic
// fallback report.
package ats

import (
	"strings"

	"github.com/jonathan/skillsync/internal/parsing"
)

// Token length cutoffs for keyword extraction. General-quality scoring keeps
// longer tokens than targeted scoring because without a job description only
// distinctive vocabulary carries signal.
const (
	generalMinTokenLen  = 5
	targetedMinTokenLen = 4
)

// maxGeneralScore caps the vocabulary-richness score when no job description
// is supplied.
const maxGeneralScore = 85.0

// missingJDPlaceholder is returned as the sole "missing" entry when no job
// description was given.
const missingJDPlaceholder = "Add Job Description for targeting"

// KeywordResult holds the keyword relevance score and the matched/missing
// keyword lists, deduplicated and in encounter order.
type KeywordResult struct {
	Score   float64
	Matched []string
	Missing []string
}

// CheckKeywords scores resume text against a job description. With an empty
// description it falls back to a vocabulary-richness score over the resume
// itself. Matching against a description uses substring containment rather
// than whole-word equality: that tolerates token-boundary noise from PDF
// extraction at the cost of false positives ("java" matches "javascript").
func CheckKeywords(text, jobDescription string) KeywordResult {
	if jobDescription == "" {
		unique := uniqueQualifying(parsing.Tokenize(text), generalMinTokenLen)
		score := float64(len(unique)) / 1.5
		if score > maxGeneralScore {
			score = maxGeneralScore
		}
		return KeywordResult{
			Score:   score,
			Matched: truncate(unique, 5),
			Missing: []string{missingJDPlaceholder},
		}
	}

	required := uniqueQualifying(parsing.Tokenize(jobDescription), targetedMinTokenLen)
	lowerText := strings.ToLower(text)

	var matched, missing []string
	for _, word := range required {
		if strings.Contains(lowerText, word) {
			matched = append(matched, word)
		} else {
			missing = append(missing, word)
		}
	}

	score := 100.0
	if len(required) > 0 {
		score = float64(len(matched)) / float64(len(required)) * 100
		if score > 100 {
			score = 100
		}
	}

	return KeywordResult{
		Score:   score,
		Matched: truncate(matched, 10),
		Missing: truncate(missing, 5),
	}
}

// uniqueQualifying keeps tokens longer than minLen that are not stop words,
// deduplicated in encounter order.
func uniqueQualifying(tokens []string, minLen int) []string {
	seen := make(map[string]bool, len(tokens))
	var unique []string
	for _, tok := range tokens {
		if len(tok) <= minLen || parsing.StopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		unique = append(unique, tok)
	}
	return unique
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
