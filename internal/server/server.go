// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/batch"
	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/domain"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
	"github.com/jonathan/resume-analyzer/internal/suggest"
)

// Config holds server configuration
type Config struct {
	ListenAddr  string
	DatabaseURL string
	APIKey      string
	UserEmail   string
}

// Deps are the collaborators the handlers depend on. Tests substitute
// fakes; production wiring comes from New.
type Deps struct {
	Extractor  extraction.TextExtractor
	Scorer     batch.Scorer
	Analyzer   *gap.Analyzer
	Engine     *suggest.Engine
	Roles      *classify.RoleClassifier
	Store      db.PredictionStore
	CloseStore func()
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	deps        Deps
	userEmail   string
	rateLimiter *ratelimit.Limiter
	validator   *validator.Validate

	// session accumulates batch results and the shortlist across
	// requests. batch.Session is single-threaded; sessionMu serializes
	// handler access.
	sessionMu sync.Mutex
	session   *batch.Session
}

// New creates a new server instance with production collaborators. The
// database is optional: without a DATABASE_URL predictions are simply not
// saved and /history reports the store as unavailable.
func New(cfg Config) (*Server, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("an OpenAI API key is required")
	}

	embedder := matching.NewOpenAIEmbedder(cfg.APIKey)
	deps := Deps{
		Extractor: extraction.NewDocumentExtractor(),
		Scorer:    matching.NewScorer(embedder, domain.NewKeywordClassifier()),
		Analyzer:  gap.NewAnalyzer(),
		Engine:    suggest.NewEngine(),
		Roles:     classify.NewRoleClassifier(),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		deps.Store = database
		deps.CloseStore = database.Close
	}

	return NewWithDeps(cfg, deps), nil
}

// NewWithDeps creates a server around explicit collaborators.
func NewWithDeps(cfg Config, deps Deps) *Server {
	s := &Server{
		deps:        deps,
		userEmail:   cfg.UserEmail,
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		validator:   validator.New(),
		session:     batch.NewSession(),
	}

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // batch runs embed every resume
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /analyze/text", s.handleAnalyzeText)
	mux.HandleFunc("POST /batch", s.handleBatch)
	mux.HandleFunc("GET /shortlist", s.handleShortlist)
	mux.HandleFunc("POST /shortlist", s.handleShortlistAdd)
	mux.HandleFunc("DELETE /shortlist", s.handleShortlistRemove)
	mux.HandleFunc("DELETE /shortlist/all", s.handleShortlistClear)
	mux.HandleFunc("GET /shortlist/export", s.handleShortlistExport)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.deps.CloseStore != nil {
		s.deps.CloseStore()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method) {
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored since the server does not sit behind a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
