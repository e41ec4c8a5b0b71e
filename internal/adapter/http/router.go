package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/pinledger/internal/adapter/http/handler"
	"github.com/iho/pinledger/internal/adapter/http/middleware"
	"github.com/iho/pinledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler  *handler.AccountHandler
	TransferHandler *handler.TransferHandler
	LedgerHandler   *handler.LedgerHandler
	HealthHandler   *handler.HealthHandler

	Logger zerolog.Logger

	// Optional
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	HTTPMetrics      *middleware.HTTPMetrics
	MetricsHandler   http.Handler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	if cfg.HTTPMetrics != nil {
		r.Use(cfg.HTTPMetrics.Wrap)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Idempotency keys only cover balance mutations. Reads always go
		// through the PIN check.
		idempotent := func(next http.Handler) http.Handler { return next }
		if cfg.IdempotencyStore != nil {
			idempotent = middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap
		}

		// Accounts. Every operation is a POST so the PIN stays out of URLs.
		r.Route("/accounts/{id}", func(r chi.Router) {
			r.Post("/balance", cfg.AccountHandler.Balance)
			r.Post("/details", cfg.AccountHandler.Details)
			r.With(idempotent).Post("/withdraw", cfg.AccountHandler.Withdraw)
			r.With(idempotent).Post("/deposit", cfg.AccountHandler.Deposit)
		})

		// Transfers
		r.With(idempotent).Post("/transfers", cfg.TransferHandler.Create)

		// Ledger
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
	})

	return r
}
