package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skillsync/internal/types"
)

const jobColumns = `id, company_id, company_name, title, description, requirements, experience_required, salary, location, status, created_at`

// CreateJob inserts a new job posting and returns its stored form.
func (s *Store) CreateJob(ctx context.Context, job *types.Job) (*types.Job, error) {
	requirements := job.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	row := s.pool.QueryRow(ctx,
		`INSERT INTO jobs (company_id, company_name, title, description, requirements, experience_required, salary, location, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+jobColumns,
		job.CompanyID, job.CompanyName, job.Title, job.Description, requirements,
		job.ExperienceRequired, job.Salary, job.Location, types.JobStatusActive,
	)
	created, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// GetJobByID returns a single job posting.
func (s *Store) GetJobByID(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListActiveJobs returns all active postings, newest first.
func (s *Store) ListActiveJobs(ctx context.Context) ([]*types.Job, error) {
	return s.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = 'active' ORDER BY created_at DESC`)
}

// JobsByCompany returns a company's postings, newest first.
func (s *Store) JobsByCompany(ctx context.Context, companyID uuid.UUID) ([]*types.Job, error) {
	return s.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
}

// ActiveJobs lists active jobs requiring at most the given experience. Feeds
// the Candidate→Jobs matching pass.
func (s *Store) ActiveJobs(ctx context.Context, maxExperienceRequired int) ([]*types.Job, error) {
	return s.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = 'active' AND experience_required <= $1`,
		maxExperienceRequired)
}

func (s *Store) queryJobs(ctx context.Context, sql string, args ...any) ([]*types.Job, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (*types.Job, error) {
	var j types.Job
	if err := row.Scan(&j.ID, &j.CompanyID, &j.CompanyName, &j.Title, &j.Description,
		&j.Requirements, &j.ExperienceRequired, &j.Salary, &j.Location, &j.Status, &j.CreatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}
