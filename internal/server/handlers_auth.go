package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/skillsync/internal/parsing"
	"github.com/jonathan/skillsync/internal/store"
	"github.com/jonathan/skillsync/internal/types"
)

// handleRegister creates a new account and returns it with a token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Role == types.RoleInterviewer && req.CompanyName == "" {
		s.errorResponse(w, http.StatusBadRequest, "company_name is required for interviewer accounts")
		return
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user, err := s.store.CreateUser(r.Context(), req.Role, req.FullName, req.Email, hash,
		req.CompanyName, parsing.SplitSkills(req.Skills), req.ExperienceYears)
	if err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	// A new candidate account enters the matching pool immediately.
	if user.Role == types.RoleCandidate {
		s.engine.CandidateOpenedToWork(user.AsCandidate())
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.LoginResponse{User: user, Token: token})
}

// handleLogin authenticates an account and returns it with a token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, hash, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		s.logger.Error("failed to look up user", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := s.passwords.VerifyPassword(hash, req.Password); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LoginResponse{User: user, Token: token})
}
