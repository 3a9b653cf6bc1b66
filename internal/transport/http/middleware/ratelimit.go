package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hrm/internal/transport/http/api"
	"hrm/internal/transport/http/shared"
)

type RateLimitKeyFunc func(r *http.Request) string

type RateLimitOption func(*rateLimiter)

type rateBucket struct {
	count int
	reset time.Time
}

type rateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	keyFn     RateLimitKeyFunc
	logger    logrus.FieldLogger
	now       func() time.Time
	clients   map[string]*rateBucket
	nextSweep time.Time
	exempt    map[string]struct{}
}

func WithKeyFunc(fn RateLimitKeyFunc) RateLimitOption {
	return func(rl *rateLimiter) {
		if fn != nil {
			rl.keyFn = fn
		}
	}
}

func WithRateLimitLogger(logger logrus.FieldLogger) RateLimitOption {
	return func(rl *rateLimiter) {
		if logger != nil {
			rl.logger = logger
		}
	}
}

// WithExemptPaths leaves the given exact paths unlimited, such as health
// checks and metric scrapes.
func WithExemptPaths(paths ...string) RateLimitOption {
	return func(rl *rateLimiter) {
		for _, p := range paths {
			if p != "" {
				rl.exempt[p] = struct{}{}
			}
		}
	}
}

func withClock(now func() time.Time) RateLimitOption {
	return func(rl *rateLimiter) {
		rl.now = now
	}
}

// RateLimit allows limit requests per client IP in each fixed window. A limit
// of zero disables it.
func RateLimit(limit int, window time.Duration, opts ...RateLimitOption) func(http.Handler) http.Handler {
	rl := &rateLimiter{
		limit:   limit,
		window:  window,
		keyFn:   shared.ClientIP,
		logger:  logrus.StandardLogger(),
		now:     time.Now,
		clients: map[string]*rateBucket{},
		exempt:  map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(rl)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.enforce(w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *rateLimiter) enforce(w http.ResponseWriter, r *http.Request) bool {
	if rl.limit <= 0 {
		return true
	}
	if _, ok := rl.exempt[r.URL.Path]; ok {
		return true
	}

	key := rl.keyFn(r)
	now := rl.now()

	rl.mu.Lock()
	rl.sweep(now)
	bucket, ok := rl.clients[key]
	if !ok || !now.Before(bucket.reset) {
		bucket = &rateBucket{reset: now.Add(rl.window)}
		rl.clients[key] = bucket
	}
	bucket.count++
	remaining := rl.limit - bucket.count
	resetIn := durationSeconds(bucket.reset.Sub(now))
	overLimit := bucket.count > rl.limit
	rl.mu.Unlock()

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(remaining, 0)))
	w.Header().Set("X-RateLimit-Reset", strconv.Itoa(resetIn))

	if overLimit {
		w.Header().Set("Retry-After", strconv.Itoa(max(resetIn, 1)))
		rl.logger.WithFields(logrus.Fields{
			"key":       key,
			"path":      r.URL.Path,
			"method":    r.Method,
			"limit":     rl.limit,
			"windowSec": int(rl.window.Seconds()),
		}).Warn("rate limit exceeded")
		api.Fail(w, r, rl.logger, http.StatusTooManyRequests, "rate_limited", "too many requests")
		return false
	}
	return true
}

// sweep drops expired buckets once per window. Callers hold mu.
func (rl *rateLimiter) sweep(now time.Time) {
	if now.Before(rl.nextSweep) {
		return
	}
	for key, bucket := range rl.clients {
		if !now.Before(bucket.reset) {
			delete(rl.clients, key)
		}
	}
	rl.nextSweep = now.Add(rl.window)
}

func durationSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	seconds := int(d.Seconds())
	if seconds <= 0 {
		return 1
	}
	return seconds
}
