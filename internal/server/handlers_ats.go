package server

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/skillsync/internal/extract"
)

// maxResumeUploadBytes caps uploaded resume files at 5 MB.
const maxResumeUploadBytes = 5 << 20

// handleAnalyze scores an uploaded resume against an optional job
// description. The file arrives as multipart field "resume".
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeUploadBytes)
	if err := r.ParseMultipartForm(maxResumeUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No resume file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	jobDescription := r.FormValue("jobDescription")

	report, err := s.analyzer.Analyze(r.Context(), data, mimeType, jobDescription)
	if err != nil {
		var extractErr *extract.Error
		if errors.As(err, &extractErr) {
			// Unsupported, empty and corrupt documents are the caller's to fix.
			s.errorResponse(w, http.StatusBadRequest, extractErr.Message)
			return
		}
		s.logger.Error("analysis failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Server error during analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
