package notify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillsync/internal/types"
)

func sampleCandidate() *types.Candidate {
	return &types.Candidate{
		ID:              uuid.New(),
		FullName:        "Ada Example",
		Email:           "ada@example.com",
		Skills:          []string{"go", "sql"},
		ExperienceYears: 5,
		ResumeURL:       "https://files.example.com/ada.pdf",
	}
}

func sampleJob() *types.Job {
	return &types.Job{
		ID:          uuid.New(),
		CompanyID:   uuid.New(),
		CompanyName: "Acme",
		Title:       "Backend Engineer",
		Location:    "Remote",
		Salary:      "$150k",
	}
}

func TestCandidateMatchEmail(t *testing.T) {
	email, err := CandidateMatchEmail(sampleCandidate(), sampleJob())
	require.NoError(t, err)

	assert.Equal(t, "New Job Match: Backend Engineer at Acme", email.Subject)
	assert.Contains(t, email.Body, "Ada Example")
	assert.Contains(t, email.Body, "Backend Engineer")
	assert.Contains(t, email.Body, "Remote")
	assert.Contains(t, email.Body, "$150k")
}

func TestCompanyMatchEmail(t *testing.T) {
	email, err := CompanyMatchEmail(sampleCandidate(), sampleJob())
	require.NoError(t, err)

	assert.Equal(t, "Candidate Match Found for Backend Engineer", email.Subject)
	assert.Contains(t, email.Body, "Ada Example")
	assert.Contains(t, email.Body, "5 years")
	assert.Contains(t, email.Body, "go, sql")
	assert.Contains(t, email.Body, "https://files.example.com/ada.pdf")
}

func TestCompanyMatchEmail_NoResumeLink(t *testing.T) {
	candidate := sampleCandidate()
	candidate.ResumeURL = ""

	email, err := CompanyMatchEmail(candidate, sampleJob())
	require.NoError(t, err)
	assert.NotContains(t, email.Body, "View Resume")
}

func TestApplicationEmails(t *testing.T) {
	received, err := ApplicationReceivedEmail(sampleCandidate(), sampleJob())
	require.NoError(t, err)
	assert.Equal(t, "New Application for Backend Engineer", received.Subject)
	assert.Contains(t, received.Body, "Ada Example")
	assert.Contains(t, received.Body, "ada@example.com")

	confirmed, err := ApplicationConfirmedEmail(sampleJob())
	require.NoError(t, err)
	assert.Equal(t, "Application Confirmation: Backend Engineer", confirmed.Subject)
	assert.Contains(t, confirmed.Body, "Backend Engineer")
	assert.Contains(t, confirmed.Body, "Acme")
}

func TestShortlistedEmail(t *testing.T) {
	email, err := ShortlistedEmail("Ada Example", sampleJob())
	require.NoError(t, err)

	assert.Equal(t, "Great News! You've been shortlisted for Backend Engineer", email.Subject)
	assert.Contains(t, email.Body, "Ada Example")
	assert.Contains(t, email.Body, "shortlisted")
	assert.Contains(t, email.Body, "Backend Engineer")
	assert.Contains(t, email.Body, "Acme")
}

func TestTemplatesEscapeHTML(t *testing.T) {
	candidate := sampleCandidate()
	candidate.FullName = `<script>alert("x")</script>`

	email, err := CandidateMatchEmail(candidate, sampleJob())
	require.NoError(t, err)
	assert.NotContains(t, email.Body, "<script>", "user-supplied values are escaped")
}
