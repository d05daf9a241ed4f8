// Package server provides the HTTP REST API for the skillsync job board.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/skillsync/internal/ats"
	"github.com/jonathan/skillsync/internal/config"
	"github.com/jonathan/skillsync/internal/extract"
	"github.com/jonathan/skillsync/internal/llm"
	"github.com/jonathan/skillsync/internal/match"
	"github.com/jonathan/skillsync/internal/notify"
	"github.com/jonathan/skillsync/internal/server/middleware"
	"github.com/jonathan/skillsync/internal/store"
)

// Server represents the HTTP server and its wired subsystems.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	analyzer   *ats.Analyzer
	engine     *match.Engine
	notifier   notify.Notifier
	jwtService *JWTService
	passwords  *config.PasswordConfig
	llmClient  llm.Client
	uploadDir  string
	logger     *zap.Logger
}

// New creates a server instance, connecting to the database and wiring the
// scoring and matching subsystems.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	s := &Server{
		store:     db,
		uploadDir: cfg.UploadDir,
		logger:    logger,
	}
	if s.uploadDir == "" {
		s.uploadDir = "uploads"
	}

	// AI adapter is optional: without an API key every analysis uses the
	// heuristic fallback.
	var reporter ats.Reporter
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		s.llmClient = client
		reporter = llm.NewReportGenerator(client)
	} else {
		logger.Warn("no GEMINI_API_KEY configured, analyses will use the heuristic fallback")
	}
	s.analyzer = ats.NewAnalyzer(extract.NewDocumentExtractor(), reporter, logger)

	if cfg.SMTPHost != "" {
		notifier, err := notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create notifier: %w", err)
		}
		s.notifier = notifier
	} else {
		logger.Warn("no SMTP_HOST configured, notifications will only be logged")
		s.notifier = notify.NewLogNotifier(logger)
	}

	s.engine = match.NewEngine(db, db, db, s.notifier, logger)

	passwords, err := config.NewPasswordConfig()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.passwords = passwords

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	authed := middleware.Auth(s.jwtService.AsTokenValidator())
	mux.Handle("POST /api/ats/analyze", authed(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("POST /api/jobs", authed(http.HandlerFunc(s.handleCreateJob)))
	mux.Handle("GET /api/jobs", authed(http.HandlerFunc(s.handleListJobs)))
	mux.Handle("GET /api/jobs/my-jobs", authed(http.HandlerFunc(s.handleMyJobs)))
	mux.Handle("POST /api/jobs/{id}/apply", authed(http.HandlerFunc(s.handleApply)))
	mux.Handle("PUT /api/users/me/open-to-work", authed(http.HandlerFunc(s.handleOpenToWork)))
	mux.Handle("POST /api/applications/apply/{jobId}", authed(http.HandlerFunc(s.handleApplicationApply)))
	mux.Handle("GET /api/applications/my", authed(http.HandlerFunc(s.handleMyApplications)))
	mux.Handle("GET /api/applications/job/{jobId}", authed(http.HandlerFunc(s.handleJobApplications)))
	mux.Handle("PUT /api/applications/{id}/status", authed(http.HandlerFunc(s.handleUpdateApplicationStatus)))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadDir))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis calls the model
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			s.logger.Warn("failed to close model client", zap.Error(err))
		}
	}
	s.store.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
