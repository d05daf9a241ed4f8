package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/skillsync/internal/notify"
	"github.com/jonathan/skillsync/internal/parsing"
	"github.com/jonathan/skillsync/internal/server/middleware"
	"github.com/jonathan/skillsync/internal/store"
	"github.com/jonathan/skillsync/internal/types"
)

// handleCreateJob posts a new job and triggers the matching engine without
// waiting for it.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, types.RoleInterviewer, "Only interviewers can post jobs")
	if !ok {
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.store.CreateJob(r.Context(), &types.Job{
		CompanyID:          user.ID,
		CompanyName:        user.CompanyName,
		Title:              req.Title,
		Description:        req.Description,
		Requirements:       parsing.SplitSkills(req.Requirements),
		ExperienceRequired: req.ExperienceRequired,
		Salary:             req.Salary,
		Location:           req.Location,
	})
	if err != nil {
		s.logger.Error("failed to create job", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	// Fire-and-forget: the response does not wait for matching.
	s.engine.JobCreated(job)

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs returns all active postings.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListActiveJobs(r.Context())
	if err != nil {
		s.logger.Error("failed to list jobs", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleMyJobs returns the authenticated company's postings.
func (s *Server) handleMyJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := s.store.JobsByCompany(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list company jobs", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleApply sends the application notifications for a job. Candidates only.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, types.RoleCandidate, "Only candidates can apply to jobs")
	if !ok {
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJobByID(r.Context(), jobID)
	if errors.Is(err, store.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to load job", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to apply")
		return
	}

	candidate := user.AsCandidate()

	// Notification failures degrade to logged no-ops; the application
	// itself still succeeds.
	if companyEmail, err := s.store.CompanyEmail(r.Context(), job.CompanyID); err != nil {
		s.logger.Warn("failed to resolve company email", zap.Error(err))
	} else if email, err := notify.ApplicationReceivedEmail(candidate, job); err != nil {
		s.logger.Warn("failed to render application email", zap.Error(err))
	} else if err := s.notifier.Send(r.Context(), companyEmail, email.Subject, email.Body); err != nil {
		s.logger.Warn("failed to notify company of application", zap.Error(err))
	}

	if email, err := notify.ApplicationConfirmedEmail(job); err != nil {
		s.logger.Warn("failed to render confirmation email", zap.Error(err))
	} else if err := s.notifier.Send(r.Context(), user.Email, email.Subject, email.Body); err != nil {
		s.logger.Warn("failed to send application confirmation", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"msg": "Application sent successfully"})
}

// requireRole loads the authenticated user and checks their role.
func (s *Server) requireRole(w http.ResponseWriter, r *http.Request, role, denyMessage string) (*types.User, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	user, err := s.store.GetUserByID(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	if err != nil {
		s.logger.Error("failed to load user", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Server error")
		return nil, false
	}
	if user.Role != role {
		s.errorResponse(w, http.StatusForbidden, denyMessage)
		return nil, false
	}
	return user, true
}
