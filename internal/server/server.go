package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/pagination"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeStore is the persistence surface the handlers need. *db.DB
// implements it; tests swap in a mock.
type ResumeStore interface {
	CreateResume(ctx context.Context, title, jobDescription string, doc types.ResumeDocument, settings types.ResumeSettings) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context) ([]db.ResumeSummary, error)
	UpdateResume(ctx context.Context, id uuid.UUID, update db.ResumeUpdate) (*db.Resume, error)
	DeleteResume(ctx context.Context, id uuid.UUID) (bool, error)
}

// Server wires the HTTP API to storage, live sessions, pagination and
// export.
type Server struct {
	store    ResumeStore
	sessions *store.Manager
	exporter *export.Exporter
	measurer pagination.Measurer
	signals  *sample.SignalStore
	limiter  *ratelimit.Limiter
}

// NewServer assembles a server from its collaborators.
func NewServer(resumes ResumeStore, sessions *store.Manager, exporter *export.Exporter, measurer pagination.Measurer, signals *sample.SignalStore, limiter *ratelimit.Limiter) *Server {
	return &Server{
		store:    resumes,
		sessions: sessions,
		exporter: exporter,
		measurer: measurer,
		signals:  signals,
		limiter:  limiter,
	}
}

// Routes builds the handler tree with logging, CORS and rate limiting
// applied to every route.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resume/{id}", s.handleGetResume)
	mux.HandleFunc("PATCH /resume/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /resume/{id}", s.handleDeleteResume)

	mux.HandleFunc("GET /resume/{id}/preview", s.handlePreview)
	mux.HandleFunc("GET /resume/{id}/breaks", s.handleBreaks)
	mux.HandleFunc("POST /resume/{id}/export", s.handleExport)

	mux.HandleFunc("POST /sample-signal", s.handleSampleSignal)

	return withLogging(withCORS(s.withRateLimit(mux)))
}

// Run serves the API until ctx is cancelled, then drains in-flight
// requests and flushes every dirty session before returning.
func (s *Server) Run(ctx context.Context, port int) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] Listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[server] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] Shutdown error: %v", err)
	}
	if err := s.sessions.FlushAll(shutdownCtx); err != nil {
		return fmt.Errorf("failed to flush sessions on shutdown: %w", err)
	}
	if s.limiter != nil {
		s.limiter.Stop()
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[server] Failed to encode response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[server] %s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		allowed, info := s.limiter.Allow(ip, r.Method, r.URL.Path)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		}
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(info.ResetAfter.Seconds())+1))
			errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
