package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Application statuses, in rough pipeline order.
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusInProgress  = "in-progress"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterview   = "interview"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusOffer       = "offer"
)

// Application represents one candidate's application to one job. A candidate
// can apply to a job at most once.
type Application struct {
	ID                 uuid.UUID `json:"id"`
	CandidateID        uuid.UUID `json:"candidate_id"`
	JobID              uuid.UUID `json:"job_id"`
	Status             string    `json:"status"`
	AIScore            int       `json:"aiScore"`
	Feedback           string    `json:"feedback,omitempty"`
	RelevantProjects   string    `json:"relevant_projects,omitempty"`
	RelevantExperience string    `json:"relevant_experience,omitempty"`
	ResumeURL          string    `json:"resume_url,omitempty"`
	AppliedAt          time.Time `json:"applied_at"`

	// Populated by listing queries; nil elsewhere.
	Job       *Job       `json:"job,omitempty"`
	Candidate *Candidate `json:"candidate,omitempty"`
}

// UpdateApplicationStatusRequest is the request body for moving an
// application through the pipeline.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied in-progress shortlisted interview rejected offer"`
}

// Validate validates the UpdateApplicationStatusRequest using the validator.
func (r *UpdateApplicationStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
