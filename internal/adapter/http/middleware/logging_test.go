package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func TestLoggingMiddleware_LogsRequestWithoutBody(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var ctxLogged bool
	handler := chimiddleware.RequestID(NewLoggingMiddleware(logger).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside handler")
		ctxLogged = true
		w.WriteHeader(http.StatusUnauthorized)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/ACC001/balance", strings.NewReader(`{"pin":"1234"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ctxLogged {
		t.Fatalf("handler was not called")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected handler line and request line, got %q", buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("invalid log line: %v", err)
	}

	if entry["status"] != float64(http.StatusUnauthorized) || entry["path"] != "/api/v1/accounts/ACC001/balance" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["request_id"] == "" || entry["request_id"] == nil {
		t.Fatalf("expected request id in entry: %v", entry)
	}
	if strings.Contains(buf.String(), `"pin"`) {
		t.Fatalf("PIN leaked into logs: %s", buf.String())
	}
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	var buf bytes.Buffer
	handler := Recovery(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "INTERNAL_ERROR") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic to be logged, got %q", buf.String())
	}
}
