package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/time/rate"
)

func TestKeyByClientIP_And_HeaderOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")

	if key := KeyByClientIP()(c); key != "ip:203.0.113.9" {
		t.Fatalf("KeyByClientIP = %q", key)
	}
	byHeader := KeyByHeaderOrIP("X-Crawler-ID")
	if key := byHeader(c); key != "ip:203.0.113.9" {
		t.Fatalf("header absent: %q", key)
	}
	c.Request.Header.Set("X-Crawler-ID", "   ")
	if key := byHeader(c); key != "ip:203.0.113.9" {
		t.Fatalf("blank header must fall back: %q", key)
	}
	c.Request.Header.Set("X-Crawler-ID", "eu-1")
	if key := byHeader(c); key != "client:eu-1" {
		t.Fatalf("header present: %q", key)
	}
}

func TestNewRateLimiter_BurstCoercion_AndReuse(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, KeyByClientIP())
	if rl.burst != 1 {
		t.Fatalf("burst coercion failed, got %d", rl.burst)
	}
	lim := rl.limiterFor("k1")
	if got := rl.limiterFor("k1"); got != lim {
		t.Fatalf("expected the same limiter for the same key")
	}
	if got := rl.limiterFor("k2"); got == lim {
		t.Fatalf("expected a distinct limiter per key")
	}
}

func TestRateLimiter_SweepsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByClientIP())
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }
	rl.lastSweep = clock

	rl.limiterFor("idle")
	rl.limiterFor("busy")

	// Within the sweep interval nothing is evicted even past the TTL.
	clock = clock.Add(30 * time.Second)
	rl.ttl = time.Second
	rl.limiterFor("busy")
	if _, ok := rl.buckets["idle"]; !ok {
		t.Fatalf("sweep ran before the interval elapsed")
	}

	clock = clock.Add(sweepInterval)
	rl.ttl = 45 * time.Second
	stale := rl.buckets["busy"].lim
	rl.limiterFor("busy")

	if _, ok := rl.buckets["idle"]; ok {
		t.Fatalf("idle bucket should have been swept")
	}
	if rl.buckets["busy"].lim == stale {
		t.Fatalf("a stale bucket must be replaced, not refreshed")
	}
	if !rl.lastSweep.Equal(clock) {
		t.Fatalf("lastSweep not advanced: %v", rl.lastSweep)
	}
}

func TestRateLimiter_CapsBuckets(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByHeaderOrIP("X-Crawler-ID"))
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }
	rl.lastSweep = clock
	rl.cap = 2

	a := rl.limiterFor("client:a")
	rl.limiterFor("client:b")
	over := rl.limiterFor("client:c")
	if got := rl.limiterFor("client:d"); got != over {
		t.Fatalf("keys past the cap must share the overflow bucket")
	}
	if got := rl.limiterFor("client:a"); got != a {
		t.Fatalf("known key lost its bucket")
	}
	if len(rl.buckets) != 3 {
		t.Fatalf("buckets = %d; want cap plus overflow", len(rl.buckets))
	}

	// Once the tracked keys go idle, new keys get their own bucket again.
	clock = clock.Add(rl.ttl)
	if got := rl.limiterFor("client:e"); got == over {
		t.Fatalf("expected a fresh bucket after idle keys were swept")
	}
	if len(rl.buckets) != 1 {
		t.Fatalf("buckets = %d after sweep; want 1", len(rl.buckets))
	}
}

func TestRateLimiter_Handler_RotatingHeaderIsLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.001, 1, KeyByHeaderOrIP("X-Crawler-ID"))
	rl.cap = 2

	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/api/v1/realms", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 5)
	for _, id := range []string{"eu-1", "eu-2", "eu-3", "eu-4", "eu-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/realms", nil)
		req.Header.Set("X-Crawler-ID", id)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	want := []int{200, 200, 200, 429, 429}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v; want %v", codes, want)
		}
	}
	if len(rl.buckets) > rl.cap+1 {
		t.Fatalf("bucket map grew to %d", len(rl.buckets))
	}
}

func TestRetryAfter(t *testing.T) {
	if got := retryAfter(rate.NewLimiter(0, 1)); got != 1 {
		t.Fatalf("zero limit: %d", got)
	}
	full := rate.NewLimiter(1, 1)
	if got := retryAfter(full); got != 1 {
		t.Fatalf("full bucket: %d", got)
	}
	slow := rate.NewLimiter(0.1, 1)
	slow.Allow()
	if got := retryAfter(slow); got < 9 || got > 10 {
		t.Fatalf("0.1 rps after one request: %d; want ~10", got)
	}
}

func TestRateLimiter_Handler_Allow_Deny_PerKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1.0, 1, KeyByClientIP())

	r := gin.New()
	r.Use(RequestID())
	r.Use(rl.Handler())
	r.GET("/api/v1/realms", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	before := testutil.ToFloat64(rateLimited.WithLabelValues("ip"))

	send := func(remote, rid string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/realms", nil)
		req.RemoteAddr = remote
		if rid != "" {
			req.Header.Set(requestIDHeader, rid)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := send("192.0.2.1:1000", ""); w.Code != http.StatusOK {
		t.Fatalf("first request should be allowed, got %d", w.Code)
	}

	w := send("192.0.2.1:1000", "rid-429")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("Retry-After = %q; want 1", got)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["code"] != "rate_limited" || body["request_id"] != "rid-429" {
		t.Fatalf("unexpected body: %v", body)
	}
	if got := testutil.ToFloat64(rateLimited.WithLabelValues("ip")) - before; got != 1 {
		t.Fatalf("rate limited counter delta = %v; want 1", got)
	}

	if w := send("198.51.100.7:4000", ""); w.Code != http.StatusOK {
		t.Fatalf("other client should be allowed, got %d", w.Code)
	}
}
