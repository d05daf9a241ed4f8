package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/skillsync/internal/server/middleware"
	"github.com/jonathan/skillsync/internal/store"
	"github.com/jonathan/skillsync/internal/types"
)

// handleOpenToWork updates the candidate's open-to-work flag. Only the
// false→true transition triggers a matching run.
func (s *Server) handleOpenToWork(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.OpenToWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	transitioned, err := s.store.SetOpenToWork(r.Context(), userID, req.OpenToWork)
	if errors.Is(err, store.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to update open_to_work", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	if transitioned {
		user, err := s.store.GetUserByID(r.Context(), userID)
		if err != nil {
			s.logger.Error("failed to reload candidate for matching", zap.Error(err))
		} else {
			s.engine.CandidateOpenedToWork(user.AsCandidate())
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]bool{"open_to_work": req.OpenToWork})
}
