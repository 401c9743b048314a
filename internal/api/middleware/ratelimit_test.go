package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dongycare/checker-backend/internal/config"
)

func serveFrom(t *testing.T, h http.Handler, remoteAddr, path string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitSharedAcrossConnections(t *testing.T) {
	// Budget covers exactly one analyze call; refill is negligible.
	rl := NewRateLimiter(config.RateLimitConfig{Rate: 0.001, Capacity: 100})
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if code := serveFrom(t, h, "203.0.113.7:40000", "/api/analyze"); code != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", code)
	}

	// Same host on fresh ephemeral ports must drain the same bucket.
	for i := 1; i <= 5; i++ {
		addr := fmt.Sprintf("203.0.113.7:%d", 40000+i)
		if code := serveFrom(t, h, addr, "/api/analyze"); code != http.StatusTooManyRequests {
			t.Errorf("call from %s: expected 429, got %d", addr, code)
		}
	}

	// A different host still has its own full budget.
	if code := serveFrom(t, h, "198.51.100.9:40000", "/api/analyze"); code != http.StatusOK {
		t.Errorf("other host: expected 200, got %d", code)
	}
}

func TestRateLimitFreeEndpoints(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Rate: 0.001, Capacity: 1})
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		if code := serveFrom(t, h, "203.0.113.7:40000", "/metrics"); code != http.StatusOK {
			t.Fatalf("metrics call %d: expected 200, got %d", i+1, code)
		}
	}
}
