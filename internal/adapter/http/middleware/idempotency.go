package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/pinledger/internal/usecase"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"

	pendingMarker = "processing"

	maxIdempotentBodyBytes = 1 << 20
)

// storedResponse is what a completed request leaves under its key. The
// fingerprint ties the key to the exact request body, PIN included.
type storedResponse struct {
	Fingerprint string `json:"fingerprint"`
	Status      int    `json:"status"`
	Body        []byte `json:"body"`
}

// IdempotencyMiddleware replays stored responses for repeated mutating
// requests carrying the same Idempotency-Key and the same body.
type IdempotencyMiddleware struct {
	store usecase.IdempotencyStore
	ttl   time.Duration
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware. A
// non-positive ttl falls back to usecase.IdempotencyKeyTTL.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, ttl time.Duration) *IdempotencyMiddleware {
	if ttl <= 0 {
		ttl = usecase.IdempotencyKeyTTL
	}

	return &IdempotencyMiddleware{store: store, ttl: ttl}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only apply to mutating requests
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(IdempotencyKeyHeader)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxIdempotentBodyBytes))
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		fingerprint := fingerprintBody(body)

		// Scope keys by endpoint so one key cannot replay another operation.
		key := r.URL.Path + ":" + header

		exists, cached, err := m.store.CheckAndSet(ctx, key, nil, m.ttl)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("idempotency check failed")
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if exists {
			if cached == nil || string(cached) == pendingMarker {
				http.Error(w, "request with this idempotency key is in progress", http.StatusConflict)
				return
			}

			var stored storedResponse
			if err := json.Unmarshal(cached, &stored); err != nil {
				zerolog.Ctx(ctx).Error().Err(err).Msg("unreadable idempotent response")
				http.Error(w, "idempotency check failed", http.StatusInternalServerError)
				return
			}

			if stored.Fingerprint != fingerprint {
				http.Error(w, "idempotency key was used with a different request", http.StatusUnprocessableEntity)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Idempotency-Replay", "true")
			w.WriteHeader(stored.Status)
			w.Write(stored.Body)
			return
		}

		// Capture response
		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			encoded, err := json.Marshal(storedResponse{
				Fingerprint: fingerprint,
				Status:      recorder.statusCode,
				Body:        recorder.body.Bytes(),
			})
			if err == nil {
				err = m.store.Update(ctx, key, encoded, m.ttl)
			}
			if err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to store idempotent response")
			}
			return
		}

		// Failed requests may be retried with the same key.
		if err := m.store.Release(ctx, key); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to release idempotency key")
		}
	})
}

func fingerprintBody(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
