package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skillsync/internal/types"
)

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = errors.New("not found")

const userColumns = `id, role, full_name, email, company_name, skills, experience_years, open_to_work, resume_url, created_at`

// CreateUser inserts a new account and returns its stored form.
func (s *Store) CreateUser(ctx context.Context, role, fullName, email, passwordHash, companyName string, skills []string, experienceYears int) (*types.User, error) {
	if skills == nil {
		skills = []string{}
	}
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (role, full_name, email, password_hash, company_name, skills, experience_years, open_to_work)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+userColumns,
		role, fullName, email, passwordHash, companyName, skills, experienceYears, role == types.RoleCandidate,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns the account and its password hash for login.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*types.User, string, error) {
	var passwordHash string
	var user types.User
	err := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email,
	).Scan(&user.ID, &user.Role, &user.FullName, &user.Email, &user.CompanyName,
		&user.Skills, &user.ExperienceYears, &user.OpenToWork, &user.ResumeURL,
		&user.CreatedAt, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, passwordHash, nil
}

// GetUserByID returns the account.
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// CompanyEmail resolves the contact address of a company account.
func (s *Store) CompanyEmail(ctx context.Context, companyID uuid.UUID) (string, error) {
	var email string
	err := s.pool.QueryRow(ctx, `SELECT email FROM users WHERE id = $1`, companyID).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve company email: %w", err)
	}
	return email, nil
}

// SetOpenToWork updates the flag and reports whether this call was the
// false→true transition that triggers matching.
func (s *Store) SetOpenToWork(ctx context.Context, id uuid.UUID, open bool) (bool, error) {
	// The CTE reads the pre-statement snapshot, so "was" is the old value.
	var was bool
	err := s.pool.QueryRow(ctx,
		`WITH prev AS (
		     SELECT open_to_work FROM users WHERE id = $2 AND role = 'candidate'
		 )
		 UPDATE users SET open_to_work = $1, updated_at = NOW()
		 WHERE id = $2 AND role = 'candidate'
		 RETURNING (SELECT open_to_work FROM prev)`,
		open, id,
	).Scan(&was)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to update open_to_work: %w", err)
	}
	return open && !was, nil
}

// OpenCandidates lists candidates open to work with at least the given
// experience. Feeds the Job→Candidates matching pass.
func (s *Store) OpenCandidates(ctx context.Context, minExperienceYears int) ([]*types.Candidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, full_name, email, skills, experience_years, open_to_work, resume_url
		 FROM users
		 WHERE role = 'candidate' AND open_to_work = TRUE AND experience_years >= $1`,
		minExperienceYears,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query open candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*types.Candidate
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Skills,
			&c.ExperienceYears, &c.OpenToWork, &c.ResumeURL); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

func scanUser(row pgx.Row) (*types.User, error) {
	var u types.User
	if err := row.Scan(&u.ID, &u.Role, &u.FullName, &u.Email, &u.CompanyName,
		&u.Skills, &u.ExperienceYears, &u.OpenToWork, &u.ResumeURL, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
