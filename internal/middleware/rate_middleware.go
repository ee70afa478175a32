package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/response"
)

// keyedLimiter hands out one token bucket per key (IP or email). Buckets
// are kept for the life of the process; the key space is small enough
// that eviction is not worth the complexity here.
type keyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newKeyedLimiter(rps float64, burst int) *keyedLimiter {
	return &keyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (k *keyedLimiter) get(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.limiters[key]
	if !ok {
		l = rate.NewLimiter(k.rps, k.burst)
		k.limiters[key] = l
	}
	return l
}

func tooManyRequests(c *gin.Context) {
	response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later", nil)
	c.Abort()
}

// RateLimitByIP throttles unauthenticated routes by client address.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	kl := newKeyedLimiter(rps, burst)
	return func(c *gin.Context) {
		if !kl.get(c.ClientIP()).Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUser throttles authenticated routes by the verified email.
// Falls back to the client IP when run before Authenticate.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	kl := newKeyedLimiter(rps, burst)
	return func(c *gin.Context) {
		key := c.GetString(EmailKey)
		if key == "" {
			key = c.ClientIP()
		}
		if !kl.get(key).Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}
