package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/pinledger/internal/adapter/http/dto"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler handles health check requests.
type HealthHandler struct {
	redis Pinger
}

// NewHealthHandler creates a new HealthHandler. redis may be nil when the
// idempotency store is disabled.
func NewHealthHandler(redis Pinger) *HealthHandler {
	return &HealthHandler{redis: redis}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the service is ready to accept traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := map[string]string{
		"status": "ready",
		"ledger": "ok",
		"redis":  "disabled",
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, dto.CodeInternal, "redis unhealthy", err.Error())
			return
		}
		status["redis"] = "ok"
	}

	writeJSON(w, http.StatusOK, status)
}
