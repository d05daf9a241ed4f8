package types

import "github.com/google/uuid"

// MatchResult pairs a candidate with a job whose experience and skill
// predicates both hold. It exists only for the duration of one matching run
// and is consumed immediately by the notification path.
type MatchResult struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	JobID         uuid.UUID `json:"job_id"`
	MatchedSkills []string  `json:"matched_skills"`
}
