// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the security pipeline, the chi router and the
member handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root for the HTTP transport framework (chi router).
  - The pipeline order is composed here explicitly and nowhere else.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/memberauth/internal/auth"
	"github.com/taibuivan/memberauth/internal/member"
	"github.com/taibuivan/memberauth/internal/platform/config"
	"github.com/taibuivan/memberauth/internal/platform/constants"
	"github.com/taibuivan/memberauth/internal/platform/middleware"
)

// APIVersionPrefix is the versioned mount point of the member API.
const APIVersionPrefix = "/v11"

// # Server Definitions

// Server wraps the composed handler and the [http.Server].
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	log        *slog.Logger
}

// # Dependency Registry

// Security groups the pipeline stages built in main.go.
type Security struct {
	Login        *auth.AuthenticationFilter
	Verification *auth.VerificationFilter
	Policy       *auth.Policy
	EntryPoint   auth.EntryPoint
	AccessDenied auth.AccessDeniedHandler
	Refresh      http.Handler
}

// Handlers groups the route handlers.
type Handlers struct {
	// Liveness is the /health handler and always returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler and returns 200 when all dependencies are healthy.
	Readiness http.HandlerFunc

	// Member serves the member CRUD endpoints.
	Member *member.Handler
}

// NewServer composes the request pipeline and the router.
//
// # Pipeline
//
//	RequestID → SecurityContextHolder → StructuredLogger → PanicRecovery →
//	RateLimit → CORS → AuthenticationFilter → VerificationFilter →
//	Authorize → router
func NewServer(cfg *config.Config, log *slog.Logger, limiter *middleware.IPRateLimiter, security Security, h Handlers) *Server {
	router := chi.NewRouter()
	router.Use(chimw.CleanPath)
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))

	// # Infrastructure Endpoints
	router.Get("/health", h.Liveness)
	router.Get("/ready", h.Readiness)

	// # Application API
	router.Post(cfg.RefreshPath, security.Refresh.ServeHTTP)
	router.Route(APIVersionPrefix, func(api chi.Router) {
		api.Mount("/members", h.Member.Routes())
	})

	stages := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		auth.SecurityContextHolder(),
		middleware.StructuredLogger(log),
		middleware.PanicRecovery(),
		middleware.RateLimit(limiter),
		middleware.CORS(cfg, cfg.AllowedOriginSuffix),
		security.Login.Middleware,
		security.Verification.Middleware,
		auth.Authorize(security.Policy, security.EntryPoint, security.AccessDenied),
	}

	handler := chain(router, stages...)

	return &Server{
		handler: handler,
		log:     log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           handler,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// chain wraps h so that stages run in the order given, the first outermost.
func chain(h http.Handler, stages ...func(http.Handler) http.Handler) http.Handler {
	for i := len(stages) - 1; i >= 0; i-- {
		h = stages[i](h)
	}
	return h
}

// Handler returns the fully composed pipeline.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server. It blocks until the server is closed.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
