// Package api provides the HTTP surface of the lobby board: the dashboard
// page, the board snapshot feed, and operational endpoints.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/lobbyboard/lobbyboard/internal/api/handler"
	"github.com/lobbyboard/lobbyboard/internal/api/middleware"
	"github.com/lobbyboard/lobbyboard/internal/board"
	"github.com/lobbyboard/lobbyboard/internal/provider/resilience"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics
	Board       *board.Board
	Registry    *resilience.Registry
}

// NewRouter creates a new chi router with all routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "lobbyboard"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers

	dashboardHandler := handler.NewDashboardHandler(cfg.Board, cfg.Logger)
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Registry)

	boardRateLimit := middleware.RateLimitByIP(middleware.BoardRateLimit)       // 300 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min

	// Dashboard page (public)
	r.Get("/", dashboardHandler.Page)

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Board snapshot - polled once per second by the page script
		r.With(boardRateLimit).Get("/board", dashboardHandler.Snapshot)

		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})
	})

	return r
}
