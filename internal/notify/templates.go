package notify

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/skillsync/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Email is a rendered notification ready for a Notifier.
type Email struct {
	Subject string
	Body    string
}

// CandidateMatchEmail renders the candidate-facing match notification.
func CandidateMatchEmail(candidate *types.Candidate, job *types.Job) (*Email, error) {
	body, err := render("candidate_match.html.tmpl", map[string]any{
		"CandidateName": candidate.FullName,
		"JobTitle":      job.Title,
		"CompanyName":   job.CompanyName,
		"Location":      job.Location,
		"Salary":        job.Salary,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		Subject: fmt.Sprintf("New Job Match: %s at %s", job.Title, job.CompanyName),
		Body:    body,
	}, nil
}

// CompanyMatchEmail renders the company-facing match notification.
func CompanyMatchEmail(candidate *types.Candidate, job *types.Job) (*Email, error) {
	body, err := render("company_match.html.tmpl", map[string]any{
		"CompanyName":     job.CompanyName,
		"JobTitle":        job.Title,
		"CandidateName":   candidate.FullName,
		"ExperienceYears": candidate.ExperienceYears,
		"Skills":          strings.Join(candidate.Skills, ", "),
		"ResumeURL":       candidate.ResumeURL,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		Subject: fmt.Sprintf("Candidate Match Found for %s", job.Title),
		Body:    body,
	}, nil
}

// ApplicationReceivedEmail renders the company-facing application notice.
func ApplicationReceivedEmail(candidate *types.Candidate, job *types.Job) (*Email, error) {
	body, err := render("application_received.html.tmpl", map[string]any{
		"CandidateName":   candidate.FullName,
		"JobTitle":        job.Title,
		"ExperienceYears": candidate.ExperienceYears,
		"Skills":          strings.Join(candidate.Skills, ", "),
		"CandidateEmail":  candidate.Email,
		"ResumeURL":       candidate.ResumeURL,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		Subject: fmt.Sprintf("New Application for %s", job.Title),
		Body:    body,
	}, nil
}

// ShortlistedEmail renders the candidate-facing shortlist notification.
func ShortlistedEmail(candidateName string, job *types.Job) (*Email, error) {
	body, err := render("shortlisted.html.tmpl", map[string]any{
		"CandidateName": candidateName,
		"JobTitle":      job.Title,
		"CompanyName":   job.CompanyName,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		Subject: fmt.Sprintf("Great News! You've been shortlisted for %s", job.Title),
		Body:    body,
	}, nil
}

// ApplicationConfirmedEmail renders the candidate-facing application receipt.
func ApplicationConfirmedEmail(job *types.Job) (*Email, error) {
	body, err := render("application_confirmed.html.tmpl", map[string]any{
		"JobTitle":    job.Title,
		"CompanyName": job.CompanyName,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		Subject: fmt.Sprintf("Application Confirmation: %s", job.Title),
		Body:    body,
	}, nil
}

func render(name string, data map[string]any) (string, error) {
	var sb strings.Builder
	if err := emailTemplates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return sb.String(), nil
}
