package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/tbourn/sejm-prints-backend/internal/sysutil"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (m *manualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *manualClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

func TestKeyByUserOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	if key := KeyByUserOrIP()(c); !strings.HasPrefix(key, "ip:") || !strings.Contains(key, "203.0.113.9") {
		t.Fatalf("expected ip-based key; got %q", key)
	}

	c.Set(UserIDKey, "anon_123")
	if key := KeyByUserOrIP()(c); key != "user:anon_123" {
		t.Fatalf("expected user-based key; got %q", key)
	}
}

func TestKeyByIP_IgnoresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	c.Set(UserIDKey, "anon_123")

	if key := KeyByIP()(c); key != "ip:203.0.113.9" {
		t.Fatalf("expected ip key; got %q", key)
	}
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, nil)
	if rl.burst != 1 {
		t.Fatalf("burst coercion failed, got %d", rl.burst)
	}
	if rl.keyFn == nil || rl.clock == nil {
		t.Fatalf("expected default key func and clock")
	}

	now := time.Now()
	lim := rl.getVisitor("k1", now)
	if got := rl.getVisitor("k1", now); got != lim {
		t.Fatalf("expected same limiter instance to be reused")
	}
}

func TestRateLimiter_getVisitor_Sweep(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	rl.mu.Lock()
	rl.visitors["old"] = &visitor{limiter: rate.NewLimiter(1, 1), lastSeen: now.Add(-time.Hour)}
	rl.visitors["fresh"] = &visitor{limiter: rate.NewLimiter(1, 1), lastSeen: now.Add(-time.Minute)}
	rl.lookups = sweepEvery - 1
	rl.mu.Unlock()

	_ = rl.getVisitor("new", now)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["old"]; ok {
		t.Fatalf("expected idle visitor to be evicted")
	}
	if _, ok := rl.visitors["fresh"]; !ok {
		t.Fatalf("recent visitor must survive the sweep")
	}
	if _, ok := rl.visitors["new"]; !ok {
		t.Fatalf("expected 'new' visitor to be created")
	}
	if rl.lookups != 0 {
		t.Fatalf("lookup counter not reset: %d", rl.lookups)
	}
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	cases := []struct {
		rps  float64
		want int
	}{
		{10, 1},
		{1, 1},
		{0.2, 5},
		{0, 1},
	}
	for _, tc := range cases {
		if got := NewRateLimiter(tc.rps, 1, nil).retryAfter(); got != tc.want {
			t.Errorf("retryAfter(rps=%v) = %d; want %d", tc.rps, got, tc.want)
		}
	}
}

func TestRateLimiter_Handler_AllowDenyRefill(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := &manualClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP(), WithRateClock(clk))

	r := gin.New()
	r.Use(RequestID(), rl.Handler())
	r.GET("/prints", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prints", nil))
		return w
	}

	if w := do(); w.Code != http.StatusOK {
		t.Fatalf("first request should be allowed, got %d", w.Code)
	}

	w2 := do()
	if w2.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be rate-limited, got %d", w2.Code)
	}
	if got := w2.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After=1, got %q", got)
	}
	var body map[string]any
	if err := json.Unmarshal(w2.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["success"] != false || body["code"] != "rate_limited" || body["error"] != "rate limit exceeded" {
		t.Fatalf("unexpected JSON body: %v", body)
	}
	if body["request_id"] == "" {
		t.Fatalf("expected request_id in body")
	}

	clk.Advance(time.Second)
	if w := do(); w.Code != http.StatusOK {
		t.Fatalf("request after refill should be allowed, got %d", w.Code)
	}
}

func TestRateLimiter_Handler_SkipPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1.0, 1, nil, WithSkipPaths("/health"), WithRateClock(sysutil.SystemClock))

	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("skipped path limited on attempt %d: %d", i, w.Code)
		}
	}
}

func TestRateLimiter_Handler_SeparateBucketsPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())

	r := gin.New()
	r.Use(Identity(nil), rl.Handler())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, uid := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderUserID, uid)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("user %s should have its own bucket, got %d", uid, w.Code)
		}
	}
}
