package ats

import "strings"

// standardSections is the fixed ordered list of resume sections an ATS
// expects to find.
var standardSections = []string{"summary", "experience", "education", "skills", "projects"}

// SectionResult holds the section completeness score and which standard
// sections were found or missing.
type SectionResult struct {
	Score   float64
	Found   []string
	Missing []string
}

// CheckSections detects standard resume sections by case-insensitive
// substring presence. Deterministic, no fuzzy matching.
func CheckSections(text string) SectionResult {
	lower := strings.ToLower(text)

	var found, missing []string
	for _, section := range standardSections {
		if strings.Contains(lower, section) {
			found = append(found, section)
		} else {
			missing = append(missing, section)
		}
	}

	return SectionResult{
		Score:   float64(len(found)) / float64(len(standardSections)) * 100,
		Found:   found,
		Missing: missing,
	}
}

// HasSection reports whether a section name appears in a found-sections list.
func (r SectionResult) HasSection(name string) bool {
	for _, s := range r.Found {
		if s == name {
			return true
		}
	}
	return false
}
