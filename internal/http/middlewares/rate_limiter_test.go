package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(rate, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rate, burst).RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	r := newLimitedRouter(10, 5)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i+1, w.Code)
		}
	}
}

func TestRateLimiterBlocksPastBurst(t *testing.T) {
	r := newLimitedRouter(10, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first two requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %d", codes[2])
	}
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	r := newLimitedRouter(10, 1)

	first := httptest.NewRecorder()
	reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
	reqA.RemoteAddr = "10.0.0.3:1234"
	r.ServeHTTP(first, reqA)

	second := httptest.NewRecorder()
	reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
	reqB.RemoteAddr = "10.0.0.4:1234"
	r.ServeHTTP(second, reqB)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("independent clients should each get their burst, got %d and %d", first.Code, second.Code)
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	rl := NewRateLimiter(2, 2)
	clock := time.Unix(1_700_000_000, 0)
	rl.now = func() time.Time { return clock }

	if !rl.allow("10.0.0.5") || !rl.allow("10.0.0.5") {
		t.Fatal("burst should be available immediately")
	}
	if rl.allow("10.0.0.5") {
		t.Fatal("exhausted bucket should block")
	}

	// Denied sub-second attempts must not push the refill clock back.
	clock = clock.Add(500 * time.Millisecond)
	if rl.allow("10.0.0.5") {
		t.Fatal("half a second should not refill at 2 rps")
	}

	clock = clock.Add(time.Second)
	if !rl.allow("10.0.0.5") {
		t.Fatal("a full elapsed second should refill tokens")
	}
}
