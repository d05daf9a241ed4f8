// Package types provides type definitions for structured data used throughout the skillsync system.
package types

// Improvement severity levels, ordered from most to least urgent.
const (
	SeverityCritical = "critical"
	SeverityMajor    = "major"
	SeverityMinor    = "minor"
)

// Maximum lengths of the qualitative report lists.
const (
	MaxStrengths   = 3
	MaxWeaknesses  = 3
	MaxSuggestions = 5
)

// Improvement is a single advisory attached to a score report.
type Improvement struct {
	Type string `json:"type"` // critical, major or minor
	Text string `json:"text"`
}

// AIReport is the structured analysis returned by the AI adapter, or built by
// the heuristic fallback when the adapter is unavailable.
type AIReport struct {
	Score       int      `json:"aiScore"`
	Summary     string   `json:"aiSummary"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// ScoreReport is the final result of one resume analysis. It is assembled
// fresh per request and never persisted by the core.
type ScoreReport struct {
	Score           int           `json:"score"`
	Summary         string        `json:"summary"`
	Strengths       []string      `json:"strengths"`
	Weaknesses      []string      `json:"weaknesses"`
	Suggestions     []string      `json:"suggestions"`
	MatchedKeywords []string      `json:"matchedKeywords"`
	MissingKeywords []string      `json:"missingKeywords"`
	SectionsFound   []string      `json:"sectionsFound"`
	SectionsMissing []string      `json:"sectionsMissing"`
	Improvements    []Improvement `json:"improvements"`
}

// ClampScore bounds a score to the [0,100] range required of every stage
// that can adjust it.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Truncate returns at most n leading elements of list.
func Truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
