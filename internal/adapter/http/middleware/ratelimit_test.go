package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRateLimiter_BlocksPerClient(t *testing.T) {
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_rate_limit_hits_total"})
	rl := NewRateLimiter(1, 1).WithHitCounter(hits)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/ACC001/balance", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := send("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	// A different source port is the same client.
	if code := send("10.0.0.1:2000"); code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", code)
	}
	if code := send("10.0.0.2:1000"); code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", code)
	}

	if got := testutil.ToFloat64(hits); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %v", got)
	}
}

func TestRateLimiter_RunCleansUp(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.getLimiter("10.0.0.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for rl.size() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected limiters to be cleaned up")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	<-done
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4444"
	if got := clientIP(req); got != "192.168.1.5" {
		t.Fatalf("expected host only, got %s", got)
	}

	req.RemoteAddr = "203.0.113.7"
	if got := clientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected raw address, got %s", got)
	}
}
