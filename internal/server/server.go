// Package server provides the HTTP API of the hiring dashboard.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/logging"
	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/server/middleware"
	"github.com/jonathan/smarthire/internal/server/ratelimit"
	"github.com/jonathan/smarthire/internal/types"
	"golang.org/x/sync/errgroup"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	logger      *logging.Logger
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	sessions    *sessionRegistry
	origins     []string

	strategy string
	attempts int
	seed     uint64
	now      func() time.Time
}

// Config holds server configuration
type Config struct {
	Addr           string
	Pool           []types.Candidate
	Strategy       string
	Attempts       int
	Seed           uint64 // 0 picks a random seed per auto-selection
	AllowedOrigins []string
	Users          []config.User
	GoogleClientID string

	JWT       *config.JWTConfig
	Passwords *config.PasswordConfig
	RateLimit *ratelimit.Config
	Logger    *logging.Logger
	Google    GoogleVerifier // overrides the verifier built from GoogleClientID
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.JWT == nil {
		return nil, fmt.Errorf("jwt config is required")
	}
	if cfg.Passwords == nil {
		return nil, fmt.Errorf("password config is required")
	}
	if _, err := selection.StrategyByName(cfg.Strategy, nil, cfg.Attempts); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	rateLimit := cfg.RateLimit
	if rateLimit == nil {
		rateLimit = ratelimit.LoadConfig()
	}
	google := cfg.Google
	if google == nil {
		google = NewGoogleVerifier(cfg.GoogleClientID)
	}

	s := &Server{
		logger:      logger,
		rateLimiter: ratelimit.NewLimiter(rateLimit),
		jwtService:  NewJWTService(cfg.JWT),
		sessions:    newSessionRegistry(cfg.Pool),
		origins:     cfg.AllowedOrigins,
		strategy:    cfg.Strategy,
		attempts:    cfg.Attempts,
		seed:        cfg.Seed,
		now:         time.Now,
	}
	s.authHandler = NewAuthHandler(NewUserService(cfg.Users, cfg.Passwords), s.jwtService, google)
	s.authHandler.onLogout = func(u *types.User) { s.sessions.drop(u.ID) }

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protect := func(h http.HandlerFunc) http.Handler { return auth(h) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /auth/google", s.authHandler.Google)
	mux.Handle("POST /auth/logout", protect(s.authHandler.Logout))
	mux.Handle("GET /auth/me", protect(s.authHandler.Me))

	// Candidates
	mux.Handle("GET /candidates", protect(s.handleListCandidates))
	mux.Handle("GET /candidates/{id}", protect(s.handleGetCandidate))
	mux.Handle("GET /facets", protect(s.handleFacets))

	// Filters and view
	mux.Handle("GET /filters", protect(s.handleGetFilters))
	mux.Handle("PUT /filters", protect(s.handleReplaceFilters))
	mux.Handle("POST /filters", protect(s.handleSetFilter))
	mux.Handle("DELETE /filters", protect(s.handleResetFilters))
	mux.Handle("PUT /view", protect(s.handleSetView))
	mux.Handle("POST /reset", protect(s.handleResetAll))

	// Team and shortlist
	mux.Handle("GET /team", protect(s.handleGetTeam))
	mux.Handle("DELETE /team", protect(s.handleClearTeam))
	mux.Handle("POST /team/{id}/toggle", protect(s.handleToggleTeam))
	mux.Handle("POST /team/auto-select", protect(s.handleAutoSelect))
	mux.Handle("GET /team/export", protect(s.handleExportTeam))
	mux.Handle("GET /shortlist", protect(s.handleGetShortlist))
	mux.Handle("DELETE /shortlist", protect(s.handleClearShortlist))
	mux.Handle("POST /shortlist/{id}/toggle", protect(s.handleToggleShortlist))

	// Analytics
	mux.Handle("GET /analytics", protect(s.handleAnalytics))
	mux.Handle("GET /stats", protect(s.handleStats))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		defer s.rateLimiter.Stop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.logger.Info("server stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(s.origins) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case slices.Contains(s.origins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log := s.logger.With("method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		if rec.status >= http.StatusInternalServerError {
			log.Error("request", "status", rec.status, "duration", time.Since(start))
			return
		}
		log.Info("request", "status", rec.status, "duration", time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.len(),
	})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", message)
	}
	writeJSON(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; forwarded headers are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds())
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		"client", s.extractClientID(r),
		"path", r.URL.Path,
		"limit", info.Limit,
	)

	writeJSON(w, http.StatusTooManyRequests, response)
}
