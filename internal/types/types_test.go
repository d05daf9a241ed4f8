package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClampScore(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"Below range", -10, 0},
		{"Lower bound", 0, 0},
		{"In range", 57, 57},
		{"Upper bound", 100, 100},
		{"Above range", 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampScore(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Truncate([]string{"a", "b", "c"}, 2))
	assert.Equal(t, []string{"a"}, Truncate([]string{"a"}, 3))
	assert.Nil(t, Truncate(nil, 3))
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		FullName:        "Ada Example",
		Email:           "ada@example.com",
		Password:        "long-enough",
		Role:            RoleCandidate,
		Skills:          "go, sql",
		ExperienceYears: 3,
	}

	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr bool
	}{
		{"Valid candidate", func(*RegisterRequest) {}, false},
		{"Valid interviewer", func(r *RegisterRequest) { r.Role = RoleInterviewer; r.CompanyName = "Acme" }, false},
		{"Missing name", func(r *RegisterRequest) { r.FullName = "" }, true},
		{"Bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, true},
		{"Short password", func(r *RegisterRequest) { r.Password = "short" }, true},
		{"Unknown role", func(r *RegisterRequest) { r.Role = "admin" }, true},
		{"Negative experience", func(r *RegisterRequest) { r.ExperienceYears = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateJobRequestValidate(t *testing.T) {
	valid := CreateJobRequest{
		Title:              "Backend Engineer",
		Description:        "Build services.",
		Requirements:       "go, sql",
		ExperienceRequired: 2,
	}

	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())

	negativeExp := valid
	negativeExp.ExperienceRequired = -1
	assert.Error(t, negativeExp.Validate())
}

func TestUpdateApplicationStatusRequestValidate(t *testing.T) {
	for _, status := range []string{
		ApplicationStatusApplied,
		ApplicationStatusInProgress,
		ApplicationStatusShortlisted,
		ApplicationStatusInterview,
		ApplicationStatusRejected,
		ApplicationStatusOffer,
	} {
		req := UpdateApplicationStatusRequest{Status: status}
		assert.NoError(t, req.Validate(), status)
	}

	for _, status := range []string{"", "hired", "Shortlisted"} {
		req := UpdateApplicationStatusRequest{Status: status}
		assert.Error(t, req.Validate(), "status %q should be rejected", status)
	}
}

func TestUserAsCandidate(t *testing.T) {
	user := &User{
		ID:              uuid.New(),
		Role:            RoleCandidate,
		FullName:        "Ada Example",
		Email:           "ada@example.com",
		Skills:          []string{"go"},
		ExperienceYears: 4,
		OpenToWork:      true,
		ResumeURL:       "https://files.example.com/ada.pdf",
	}

	candidate := user.AsCandidate()
	assert.Equal(t, user.ID, candidate.ID)
	assert.Equal(t, user.FullName, candidate.FullName)
	assert.Equal(t, user.Email, candidate.Email)
	assert.Equal(t, user.Skills, candidate.Skills)
	assert.Equal(t, user.ExperienceYears, candidate.ExperienceYears)
	assert.True(t, candidate.OpenToWork)
	assert.Equal(t, user.ResumeURL, candidate.ResumeURL)
}
