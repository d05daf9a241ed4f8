// Package match implements the bidirectional matching engine: it
// cross-filters candidates against job postings on experience and exact
// skill equality and emits notification requests.
package match

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/skillsync/internal/notify"
	"github.com/jonathan/skillsync/internal/types"
)

// CandidateSource queries candidates open to work with at least the given
// experience. Read-only.
type CandidateSource interface {
	OpenCandidates(ctx context.Context, minExperienceYears int) ([]*types.Candidate, error)
}

// JobSource queries active jobs requiring at most the given experience.
// Read-only.
type JobSource interface {
	ActiveJobs(ctx context.Context, maxExperienceRequired int) ([]*types.Job, error)
}

// CompanyDirectory resolves the contact address for a job's company.
type CompanyDirectory interface {
	CompanyEmail(ctx context.Context, companyID uuid.UUID) (string, error)
}

// Defaults for the fire-and-forget dispatcher.
const (
	defaultMaxConcurrentRuns = 4
	defaultRunTimeout        = 2 * time.Minute
	defaultDedupeBucket      = 30 * time.Second
)

// Engine runs matching passes and sends the resulting notifications. It is
// safe for concurrent use; each run is a pure filter over its inputs.
type Engine struct {
	candidates CandidateSource
	jobs       JobSource
	directory  CompanyDirectory
	notifier   notify.Notifier
	logger     *zap.Logger

	sem        *semaphore.Weighted
	seen       *seenSet
	runTimeout time.Duration
	background func(func()) // test hook; defaults to go
}

// NewEngine creates a matching engine.
func NewEngine(candidates CandidateSource, jobs JobSource, directory CompanyDirectory, notifier notify.Notifier, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		candidates: candidates,
		jobs:       jobs,
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
		sem:        semaphore.NewWeighted(defaultMaxConcurrentRuns),
		seen:       newSeenSet(defaultDedupeBucket),
		runTimeout: defaultRunTimeout,
		background: func(fn func()) { go fn() },
	}
}

// JobCreated triggers a Job→Candidates matching run without blocking the
// caller. Errors inside the run are logged, never returned.
func (e *Engine) JobCreated(job *types.Job) {
	e.dispatch("job_created", job.ID.String(), func(ctx context.Context) error {
		return e.MatchJobToCandidates(ctx, job)
	})
}

// CandidateOpenedToWork triggers a Candidate→Jobs matching run without
// blocking the caller. Fires on the open-to-work false→true transition and
// on candidate creation.
func (e *Engine) CandidateOpenedToWork(candidate *types.Candidate) {
	e.dispatch("candidate_opened", candidate.ID.String(), func(ctx context.Context) error {
		return e.MatchCandidateToJobs(ctx, candidate)
	})
}

// dispatch runs fn in the background under the concurrency limit. The
// triggering write returns before any matching work happens.
func (e *Engine) dispatch(trigger, entityID string, fn func(ctx context.Context) error) {
	e.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), e.runTimeout)
		defer cancel()

		if err := e.sem.Acquire(ctx, 1); err != nil {
			e.logger.Warn("matching run not started",
				zap.String("trigger", trigger), zap.String("entity_id", entityID), zap.Error(err))
			return
		}
		defer e.sem.Release(1)

		if err := fn(ctx); err != nil {
			e.logger.Error("matching run failed",
				zap.String("trigger", trigger), zap.String("entity_id", entityID), zap.Error(err))
		}
	})
}

// MatchJobToCandidates finds open candidates whose experience meets the
// job's requirement and whose skills intersect the job's, then notifies each
// matched pair. Store errors abort the run; per-pair notification failures
// do not.
func (e *Engine) MatchJobToCandidates(ctx context.Context, job *types.Job) error {
	candidates, err := e.candidates.OpenCandidates(ctx, job.ExperienceRequired)
	if err != nil {
		return fmt.Errorf("failed to query candidates: %w", err)
	}

	matches := 0
	for _, candidate := range candidates {
		skills := intersectSkills(job.Requirements, candidate.Skills)
		if len(skills) == 0 {
			continue
		}
		matches++
		e.notifyPair(ctx, candidate, job, types.MatchResult{
			CandidateID:   candidate.ID,
			JobID:         job.ID,
			MatchedSkills: skills,
		})
	}

	e.logger.Info("job matching run complete",
		zap.String("job_id", job.ID.String()),
		zap.String("title", job.Title),
		zap.Int("candidates_considered", len(candidates)),
		zap.Int("matches", matches))
	return nil
}

// MatchCandidateToJobs finds active jobs the candidate qualifies for and
// notifies each matched pair.
func (e *Engine) MatchCandidateToJobs(ctx context.Context, candidate *types.Candidate) error {
	jobs, err := e.jobs.ActiveJobs(ctx, candidate.ExperienceYears)
	if err != nil {
		return fmt.Errorf("failed to query jobs: %w", err)
	}

	matches := 0
	for _, job := range jobs {
		skills := intersectSkills(job.Requirements, candidate.Skills)
		if len(skills) == 0 {
			continue
		}
		matches++
		e.notifyPair(ctx, candidate, job, types.MatchResult{
			CandidateID:   candidate.ID,
			JobID:         job.ID,
			MatchedSkills: skills,
		})
	}

	e.logger.Info("candidate matching run complete",
		zap.String("candidate_id", candidate.ID.String()),
		zap.Int("jobs_considered", len(jobs)),
		zap.Int("matches", matches))
	return nil
}

// notifyPair sends the candidate-facing and company-facing notifications for
// one match. Failures are logged and isolated so later pairs still process.
func (e *Engine) notifyPair(ctx context.Context, candidate *types.Candidate, job *types.Job, result types.MatchResult) {
	if e.seen.seen(result.CandidateID, result.JobID) {
		e.logger.Debug("duplicate match suppressed",
			zap.String("candidate_id", result.CandidateID.String()),
			zap.String("job_id", result.JobID.String()))
		return
	}

	pairLog := e.logger.With(
		zap.String("candidate_id", result.CandidateID.String()),
		zap.String("job_id", result.JobID.String()),
		zap.Strings("matched_skills", result.MatchedSkills))

	if email, err := notify.CandidateMatchEmail(candidate, job); err != nil {
		pairLog.Error("failed to render candidate email", zap.Error(err))
	} else if err := e.notifier.Send(ctx, candidate.Email, email.Subject, email.Body); err != nil {
		pairLog.Error("failed to notify candidate", zap.Error(err))
	}

	companyEmail, err := e.directory.CompanyEmail(ctx, job.CompanyID)
	if err != nil {
		pairLog.Error("failed to resolve company email", zap.Error(err))
		return
	}
	if email, err := notify.CompanyMatchEmail(candidate, job); err != nil {
		pairLog.Error("failed to render company email", zap.Error(err))
	} else if err := e.notifier.Send(ctx, companyEmail, email.Subject, email.Body); err != nil {
		pairLog.Error("failed to notify company", zap.Error(err))
	}
}
