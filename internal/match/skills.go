package match

import (
	"math"
	"strings"

	"github.com/jonathan/skillsync/internal/parsing"
)

// noRequirementsScore is assigned when the job lists no requirements to
// score against.
const noRequirementsScore = 80

// intersectSkills returns the skills present in both lists under exact
// case-insensitive equality, deduplicated in job-skill order. Stricter than
// the keyword scorer's substring containment: "java" does not match
// "javascript" here.
func intersectSkills(jobSkills, candidateSkills []string) []string {
	if len(jobSkills) == 0 || len(candidateSkills) == 0 {
		return nil
	}

	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		if norm := parsing.NormalizeSkill(s); norm != "" {
			candidateSet[norm] = true
		}
	}

	var matched []string
	seen := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		norm := parsing.NormalizeSkill(s)
		if norm == "" || seen[norm] || !candidateSet[norm] {
			continue
		}
		seen[norm] = true
		matched = append(matched, norm)
	}
	return matched
}

// SkillOverlapScore rates a candidate against a job's requirements for an
// application record. Unlike intersectSkills this uses bidirectional
// substring containment, so "javascript" covers a "java" requirement and
// vice versa. A job with no requirements scores a flat 80.
func SkillOverlapScore(jobSkills, candidateSkills []string) int {
	if len(jobSkills) == 0 {
		return noRequirementsScore
	}

	matchCount := 0
	for _, skill := range jobSkills {
		js := parsing.NormalizeSkill(skill)
		for _, cs := range candidateSkills {
			c := parsing.NormalizeSkill(cs)
			if c == "" || js == "" {
				continue
			}
			if strings.Contains(c, js) || strings.Contains(js, c) {
				matchCount++
				break
			}
		}
	}

	return int(math.Round(float64(matchCount) / float64(len(jobSkills)) * 100))
}
