package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/juju/ratelimit"

	"github.com/dongycare/checker-backend/internal/config"
	"github.com/dongycare/checker-backend/internal/pkg/response"
)

// RateLimiter keeps a token bucket per client IP. Endpoint costs are
// weighted: a model call burns far more tokens than a health check.
type RateLimiter struct {
	cfg     config.RateLimitConfig
	clients map[string]*ratelimit.Bucket
	mu      sync.RWMutex
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		cfg:     cfg,
		clients: make(map[string]*ratelimit.Bucket),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) getBucket(clientIP string) *ratelimit.Bucket {
	rl.mu.RLock()
	bucket, exists := rl.clients[clientIP]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if bucket, exists = rl.clients[clientIP]; !exists {
			bucket = ratelimit.NewBucketWithRate(rl.cfg.Rate, rl.cfg.Capacity)
			rl.clients[clientIP] = bucket
		}
		rl.mu.Unlock()
	}

	return bucket
}

// cleanup drops buckets that have refilled completely, i.e. clients
// that have been idle long enough to not matter anymore.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(30 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		for ip, bucket := range rl.clients {
			if bucket.Available() == bucket.Capacity() {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func tokenCost(path string) int64 {
	switch path {
	case "/", "/favicon.ico", "/metrics":
		return 0
	case "/health":
		return 1
	case "/api/symptom-groups":
		return 5
	case "/api/report":
		return 20
	case "/api/analyze":
		// Each analyze is a paid model call
		return 100
	}

	if strings.HasPrefix(path, "/docs") {
		return 0
	}

	return 10
}

// clientIP strips the ephemeral port so all connections from one host
// share a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware enforces the per-IP budget and reports remaining tokens.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bucket := rl.getBucket(clientIP(r))
		cost := tokenCost(r.URL.Path)

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(rl.cfg.Capacity, 10))

		if bucket.TakeAvailable(cost) < cost {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("Retry-After", "60")
			response.Error(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(bucket.Available(), 10))

		next.ServeHTTP(w, r)
	})
}
