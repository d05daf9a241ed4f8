package types

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRequest represents the request to create a new account.
type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required,min=1"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Role            string `json:"role" validate:"required,oneof=candidate interviewer"`
	CompanyName     string `json:"company_name,omitempty"`
	Skills          string `json:"skills,omitempty"` // comma-separated
	ExperienceYears int    `json:"experience_years" validate:"min=0"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login/register response with user data and
// authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// OpenToWorkRequest toggles a candidate's open-to-work flag.
type OpenToWorkRequest struct {
	OpenToWork bool `json:"open_to_work"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
