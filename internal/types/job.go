package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Job statuses.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// Job represents a posted job. Owned by the job-posting side; the matching
// engine reads it and never mutates it.
type Job struct {
	ID                 uuid.UUID `json:"id"`
	CompanyID          uuid.UUID `json:"company_id"`
	CompanyName        string    `json:"company_name"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Requirements       []string  `json:"requirements"`
	ExperienceRequired int       `json:"experience_required"`
	Salary             string    `json:"salary,omitempty"`
	Location           string    `json:"location,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateJobRequest is the request body for posting a new job. Requirements
// arrive as a single comma-separated string and are split server-side.
type CreateJobRequest struct {
	Title              string `json:"title" validate:"required,min=1"`
	Description        string `json:"description" validate:"required,min=1"`
	Requirements       string `json:"requirements" validate:"required,min=1"`
	ExperienceRequired int    `json:"experience_required" validate:"min=0"`
	Salary             string `json:"salary,omitempty"`
	Location           string `json:"location,omitempty"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
