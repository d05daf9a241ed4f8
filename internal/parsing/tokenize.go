// Package parsing provides text tokenization and skill normalization shared
// by the ATS scorer and the matching engine.
package parsing

import (
	"strings"
	"unicode"
)

// StopWords filters common English words that add noise to keyword scoring.
var StopWords = map[string]bool{
	"the": true, "and": true, "with": true, "for": true, "from": true,
	"that": true, "this": true, "have": true, "been": true, "was": true,
	"were": true,
}

// Tokenize splits text into lowercase word tokens. Tech suffixes like "c++",
// "c#" and "node.js" survive because + # . are treated as word characters.
// No stemming is applied.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// NormalizeSkill canonicalizes a skill name for equality matching: trimmed
// and lowercased, nothing more. The matching engine compares skills by exact
// equality on this form, unlike the keyword scorer's substring containment.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// SplitSkills parses a comma-separated skills string into a cleaned slice,
// dropping empty entries.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
