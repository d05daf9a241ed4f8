package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/skillsync/internal/types"
)

// ErrDuplicate is returned when an insert violates a uniqueness rule, such
// as applying to the same job twice.
var ErrDuplicate = errors.New("already exists")

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

const applicationColumns = `id, candidate_id, job_id, status, ai_score, feedback, relevant_projects, relevant_experience, resume_url, applied_at`

// CreateApplication inserts a new application. The (candidate, job) pair is
// unique; a second application returns ErrDuplicate.
func (s *Store) CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO applications (candidate_id, job_id, status, ai_score, relevant_projects, relevant_experience, resume_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+applicationColumns,
		app.CandidateID, app.JobID, types.ApplicationStatusApplied, app.AIScore,
		app.RelevantProjects, app.RelevantExperience, app.ResumeURL,
	)
	created, err := scanApplication(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return created, nil
}

// ApplicationsByCandidate lists a candidate's applications with their job
// postings attached, newest first.
func (s *Store) ApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*types.Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.candidate_id, a.job_id, a.status, a.ai_score, a.feedback,
		        a.relevant_projects, a.relevant_experience, a.resume_url, a.applied_at,
		        j.title, j.company_name, j.location, j.salary
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.candidate_id = $1
		 ORDER BY a.applied_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var applications []*types.Application
	for rows.Next() {
		var a types.Application
		var job types.Job
		if err := rows.Scan(&a.ID, &a.CandidateID, &a.JobID, &a.Status, &a.AIScore, &a.Feedback,
			&a.RelevantProjects, &a.RelevantExperience, &a.ResumeURL, &a.AppliedAt,
			&job.Title, &job.CompanyName, &job.Location, &job.Salary); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		job.ID = a.JobID
		a.Job = &job
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return applications, nil
}

// ApplicationsByJob lists a job's applications with candidate profiles
// attached, best match first.
func (s *Store) ApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]*types.Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.candidate_id, a.job_id, a.status, a.ai_score, a.feedback,
		        a.relevant_projects, a.relevant_experience, a.resume_url, a.applied_at,
		        u.full_name, u.email, u.skills, u.experience_years, u.resume_url
		 FROM applications a
		 JOIN users u ON u.id = a.candidate_id
		 WHERE a.job_id = $1
		 ORDER BY a.ai_score DESC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var applications []*types.Application
	for rows.Next() {
		var a types.Application
		var candidate types.Candidate
		if err := rows.Scan(&a.ID, &a.CandidateID, &a.JobID, &a.Status, &a.AIScore, &a.Feedback,
			&a.RelevantProjects, &a.RelevantExperience, &a.ResumeURL, &a.AppliedAt,
			&candidate.FullName, &candidate.Email, &candidate.Skills,
			&candidate.ExperienceYears, &candidate.ResumeURL); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		candidate.ID = a.CandidateID
		a.Candidate = &candidate
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return applications, nil
}

// GetApplicationByID returns one application with the candidate contact and
// job posting attached, as needed for status-change notifications.
func (s *Store) GetApplicationByID(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	var a types.Application
	var candidate types.Candidate
	var job types.Job
	err := s.pool.QueryRow(ctx,
		`SELECT a.id, a.candidate_id, a.job_id, a.status, a.ai_score, a.feedback,
		        a.relevant_projects, a.relevant_experience, a.resume_url, a.applied_at,
		        u.full_name, u.email,
		        j.title, j.company_name, j.company_id
		 FROM applications a
		 JOIN users u ON u.id = a.candidate_id
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.id = $1`,
		id,
	).Scan(&a.ID, &a.CandidateID, &a.JobID, &a.Status, &a.AIScore, &a.Feedback,
		&a.RelevantProjects, &a.RelevantExperience, &a.ResumeURL, &a.AppliedAt,
		&candidate.FullName, &candidate.Email,
		&job.Title, &job.CompanyName, &job.CompanyID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	candidate.ID = a.CandidateID
	job.ID = a.JobID
	a.Candidate = &candidate
	a.Job = &job
	return &a, nil
}

// UpdateApplicationStatus moves an application to the given status.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetResumeURL records the location of a candidate's uploaded resume.
func (s *Store) SetResumeURL(ctx context.Context, userID uuid.UUID, url string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET resume_url = $1, updated_at = NOW() WHERE id = $2`, url, userID)
	if err != nil {
		return fmt.Errorf("failed to update resume url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanApplication(row pgx.Row) (*types.Application, error) {
	var a types.Application
	if err := row.Scan(&a.ID, &a.CandidateID, &a.JobID, &a.Status, &a.AIScore, &a.Feedback,
		&a.RelevantProjects, &a.RelevantExperience, &a.ResumeURL, &a.AppliedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
