package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"safelink-lite/company"
	"safelink-lite/urlcheck"
)

// URLScorer scores a single URL.
type URLScorer interface {
	Score(raw string) urlcheck.Verdict
}

// CompanyVerifier verifies a company name or website.
type CompanyVerifier interface {
	Verify(ctx context.Context, input string) company.Verdict
}

type Server struct {
	scorer   URLScorer
	verifier CompanyVerifier
}

func New(scorer URLScorer, verifier CompanyVerifier) *Server {
	return &Server{scorer: scorer, verifier: verifier}
}

// Routes returns the HTTP API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Post("/check-url", s.CheckURL)
	r.Post("/verify-company", s.VerifyCompany)
	r.Get("/health", s.Health)
	return r
}

// ListenAndServe serves Routes on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Printf("[HTTP] listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type checkURLRequest struct {
	URL *string `json:"url"`
}

type verifyCompanyRequest struct {
	CompanyName *string `json:"company_name"`
}

func (s *Server) CheckURL(w http.ResponseWriter, r *http.Request) {
	var req checkURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == nil {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}
	raw := strings.TrimSpace(*req.URL)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "URL cannot be empty")
		return
	}

	writeJSON(w, http.StatusOK, s.scorer.Score(raw))
}

func (s *Server) VerifyCompany(w http.ResponseWriter, r *http.Request) {
	var req verifyCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CompanyName == nil {
		writeError(w, http.StatusBadRequest, "Company name is required")
		return
	}
	name := strings.TrimSpace(*req.CompanyName)
	if name == "" {
		writeError(w, http.StatusBadRequest, "Company name cannot be empty")
		return
	}

	writeJSON(w, http.StatusOK, s.verifier.Verify(r.Context(), name))
}

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Printf("[HTTP] %s %s %s -> %d (%s)", id, r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}
