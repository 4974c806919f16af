// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements an in-memory, per-key token-bucket rate limiter
// backed by golang.org/x/time/rate. Buckets are keyed by client IP, or by the
// resolved user id when Identity ran first. Idle buckets are evicted
// opportunistically.
//
// The limiter is process-local; it protects the upstream Sejm API and the
// vote store from a single noisy client, it is not an authorization check.
package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/tbourn/sejm-prints-backend/internal/sysutil"
)

const (
	defaultVisitorTTL = 10 * time.Minute
	sweepEvery        = 5000
)

// KeyFunc selects the identity a request is limited by.
type KeyFunc func(*gin.Context) string

// KeyByUserOrIP prefers the user id set by Identity and falls back to the
// client IP. Keys are namespaced ("user:", "ip:").
func KeyByUserOrIP() KeyFunc {
	return func(c *gin.Context) string {
		if uid := UserID(c); uid != "" {
			return "user:" + uid
		}
		return "ip:" + c.ClientIP()
	}
}

// KeyByIP keys by client IP only. It is safe to run before Identity, since
// rotating identity headers does not yield a fresh bucket.
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per key. Safe for concurrent use.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn KeyFunc
	clock sysutil.Clock
	skip  map[string]struct{}

	mu       sync.Mutex
	visitors map[string]*visitor
	ttl      time.Duration
	lookups  uint64
}

// RateOption customizes a RateLimiter.
type RateOption func(*RateLimiter)

// WithSkipPaths exempts exact request paths, e.g. /health and /metrics.
func WithSkipPaths(paths ...string) RateOption {
	return func(rl *RateLimiter) {
		for _, p := range paths {
			rl.skip[p] = struct{}{}
		}
	}
}

// WithRateClock replaces the wall clock used for token accounting.
func WithRateClock(c sysutil.Clock) RateOption {
	return func(rl *RateLimiter) {
		if c != nil {
			rl.clock = c
		}
	}
}

// NewRateLimiter builds a limiter refilling rps tokens per second with the
// given burst. A burst <= 0 is coerced to 1.
func NewRateLimiter(rps float64, burst int, keyFn KeyFunc, opts ...RateOption) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	if keyFn == nil {
		keyFn = KeyByUserOrIP()
	}
	rl := &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		clock:    sysutil.SystemClock,
		skip:     make(map[string]struct{}),
		visitors: make(map[string]*visitor),
		ttl:      defaultVisitorTTL,
	}
	for _, o := range opts {
		o(rl)
	}
	return rl
}

// getVisitor returns the bucket for key, creating it when absent. Every
// sweepEvery lookups idle buckets are evicted first, so an expired bucket is
// replaced rather than refreshed.
func (rl *RateLimiter) getVisitor(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= sweepEvery {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// retryAfter is the whole number of seconds until one token is available,
// never less than 1.
func (rl *RateLimiter) retryAfter() int {
	if rl.rps <= 0 || math.IsInf(float64(rl.rps), 1) {
		return 1
	}
	secs := int(math.Ceil(1 / float64(rl.rps)))
	if secs < 1 {
		return 1
	}
	return secs
}

// Handler enforces the limit. Rejected requests get 429, a Retry-After
// header and the standard error envelope.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := rl.skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		now := rl.clock.Now()
		if rl.getVisitor(rl.keyFn(c), now).AllowN(now, 1) {
			c.Next()
			return
		}

		c.Header("Retry-After", strconv.Itoa(rl.retryAfter()))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"success":    false,
			"request_id": c.Writer.Header().Get(requestIDHeader),
			"code":       "rate_limited",
			"error":      "rate limit exceeded",
		})
	}
}
