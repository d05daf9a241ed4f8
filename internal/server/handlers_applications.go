package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/skillsync/internal/match"
	"github.com/jonathan/skillsync/internal/notify"
	"github.com/jonathan/skillsync/internal/server/middleware"
	"github.com/jonathan/skillsync/internal/store"
	"github.com/jonathan/skillsync/internal/types"
)

// maxApplicationUploadBytes caps apply-time resume uploads at 10 MB.
const maxApplicationUploadBytes = 10 << 20

// resumeExtensions lists the accepted resume file extensions.
var resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// handleApplicationApply records a candidate's application to a job,
// scoring the skill overlap and storing an optional tailored resume.
func (s *Server) handleApplicationApply(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, types.RoleCandidate, "Only candidates can apply to jobs")
	if !ok {
		return
	}

	jobID, err := uuid.Parse(r.PathValue("jobId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxApplicationUploadBytes)
	if err := r.ParseMultipartForm(maxApplicationUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
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

	application := &types.Application{
		CandidateID:        user.ID,
		JobID:              job.ID,
		AIScore:            match.SkillOverlapScore(job.Requirements, user.Skills),
		RelevantProjects:   r.FormValue("relevantProjects"),
		RelevantExperience: r.FormValue("relevantExperience"),
	}

	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		url, err := s.saveResume(file, header.Filename)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		application.ResumeURL = url
		// The newest upload also becomes the profile resume used in
		// match notifications.
		if err := s.store.SetResumeURL(r.Context(), user.ID, url); err != nil {
			s.logger.Warn("failed to update profile resume", zap.Error(err))
		}
	}

	created, err := s.store.CreateApplication(r.Context(), application)
	if errors.Is(err, store.ErrDuplicate) {
		s.errorResponse(w, http.StatusBadRequest, "You have already applied to this job")
		return
	}
	if err != nil {
		s.logger.Error("failed to create application", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to apply")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleMyApplications returns the authenticated user's applications,
// newest first, with their job postings attached.
func (s *Server) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	applications, err := s.store.ApplicationsByCandidate(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list applications", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	s.jsonResponse(w, http.StatusOK, applications)
}

// handleJobApplications returns a job's applications ranked by score.
// Interviewers can only see applications to their own postings.
func (s *Server) handleJobApplications(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, types.RoleInterviewer, "Not authorized")
	if !ok {
		return
	}

	jobID, err := uuid.Parse(r.PathValue("jobId"))
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
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	if job.CompanyID != user.ID {
		s.errorResponse(w, http.StatusForbidden, "Not authorized to view this job's applications")
		return
	}

	applications, err := s.store.ApplicationsByJob(r.Context(), jobID)
	if err != nil {
		s.logger.Error("failed to list applications", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	s.jsonResponse(w, http.StatusOK, applications)
}

// handleUpdateApplicationStatus moves an application through the pipeline.
// A move to shortlisted emails the candidate.
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	_, ok := s.requireRole(w, r, types.RoleInterviewer, "Not authorized")
	if !ok {
		return
	}

	applicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req types.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	application, err := s.store.GetApplicationByID(r.Context(), applicationID)
	if errors.Is(err, store.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to load application", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update application")
		return
	}

	if err := s.store.UpdateApplicationStatus(r.Context(), applicationID, req.Status); err != nil {
		s.logger.Error("failed to update application status", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update application")
		return
	}
	application.Status = req.Status

	if req.Status == types.ApplicationStatusShortlisted {
		if email, err := notify.ShortlistedEmail(application.Candidate.FullName, application.Job); err != nil {
			s.logger.Warn("failed to render shortlist email", zap.Error(err))
		} else if err := s.notifier.Send(r.Context(), application.Candidate.Email, email.Subject, email.Body); err != nil {
			s.logger.Warn("failed to send shortlist email", zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusOK, application)
}

// saveResume stores an uploaded resume file and returns its public URL path.
func (s *Server) saveResume(file multipart.File, originalName string) (string, error) {
	name, err := resumeFileName(originalName, time.Now())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create resume file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to store resume file: %w", err)
	}
	return "/uploads/" + name, nil
}

// resumeFileName validates the extension and builds a collision-free stored
// name.
func resumeFileName(originalName string, now time.Time) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !resumeExtensions[ext] {
		return "", fmt.Errorf("resume upload only supports: pdf, doc, docx")
	}
	return fmt.Sprintf("resume-%d-%s%s", now.UnixNano(), uuid.NewString(), ext), nil
}
