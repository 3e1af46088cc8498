package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket is one client's token balance. last only advances when a
// refill lands, so a burst of sub-second requests cannot starve the
// refill clock.
type bucket struct {
	tokens int
	last   time.Time
}

// RateLimiter applies a per-client token bucket keyed by client IP.
// Limits come from RATE_LIMIT_RPS and RATE_LIMIT_BURST on the general
// config.
type RateLimiter struct {
	mu      sync.Mutex
	rate    int
	burst   int
	buckets map[string]*bucket

	// now is swapped for a fixed clock in tests.
	now func() time.Time
}

func NewRateLimiter(rate, burst int) *RateLimiter {
	return &RateLimiter{
		rate:    rate,
		burst:   burst,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: rl.burst, last: now}
		rl.buckets[key] = b
	}

	if refill := int(now.Sub(b.last).Seconds()) * rl.rate; refill > 0 {
		b.tokens = min(b.tokens+refill, rl.burst)
		b.last = now
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
