package types

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
)

// Candidate is the matching engine's view of a candidate profile. Read-only
// to the core except for the open-to-work transition that triggers matching.
type Candidate struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	OpenToWork      bool      `json:"open_to_work"`
	ResumeURL       string    `json:"resume_url,omitempty"`
}

// User represents an account for API responses (candidate or interviewer).
type User struct {
	ID              uuid.UUID `json:"id"`
	Role            string    `json:"role"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	CompanyName     string    `json:"company_name,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	OpenToWork      bool      `json:"open_to_work"`
	ResumeURL       string    `json:"resume_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AsCandidate projects the matching-relevant fields out of a user account.
func (u *User) AsCandidate() *Candidate {
	return &Candidate{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		Skills:          u.Skills,
		ExperienceYears: u.ExperienceYears,
		OpenToWork:      u.OpenToWork,
		ResumeURL:       u.ResumeURL,
	}
}
