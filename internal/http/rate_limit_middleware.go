package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter tracks the token bucket and last activity for one client IP.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter maintains per-client token buckets. Idle entries are pruned
// so the map does not grow without bound.
type ipRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
}

const clientIdleTTL = 10 * time.Minute

func newIPRateLimiter(requestsPerSec float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(requestsPerSec),
		burst:   burst,
	}
}

// allow reports whether the given client may proceed.
func (l *ipRateLimiter) allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	client, ok := l.clients[clientIP]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[clientIP] = client
	}
	client.lastSeen = now

	// Prune idle clients opportunistically.
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > clientIdleTTL {
			delete(l.clients, ip)
		}
	}

	return client.limiter.Allow()
}

// RateLimitMiddleware limits requests per client IP using a token bucket.
func RateLimitMiddleware(requestsPerSec float64, burst int) gin.HandlerFunc {
	limiter := newIPRateLimiter(requestsPerSec, burst)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limited",
				"message": "Too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
