package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabinshresthaaa/CoverPage/pkg/logger"
	"github.com/rabinshresthaaa/CoverPage/pkg/metrics"
	"golang.org/x/time/rate"
)

const (
	limiterMemory = "memory"
	limiterRedis  = "redis"
)

// RateLimiter keeps one token bucket per client. Buckets are dropped every
// window so idle clients do not accumulate.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	lastReset time.Time
	rps       rate.Limit
	burst     int
	window    time.Duration
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(rps float64, burst int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		lastReset: time.Now(),
		rps:       rate.Limit(rps),
		burst:     burst,
		window:    window,
	}
}

// Allow takes a token from key's bucket.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.window > 0 && time.Since(l.lastReset) > l.window {
		l.limiters = make(map[string]*rate.Limiter)
		l.lastReset = time.Now()
	}

	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.limiters[key] = lim
	}
	return lim.Allow()
}

// RateLimit rejects clients that exceed rps with a 429.
func RateLimit(rps float64, burst int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(rps, burst, window)

	return func(c *gin.Context) {
		key := rateLimitKey(c)
		if !limiter.Allow(key) {
			rejectRateLimited(c, limiterMemory, key, "1")
			return
		}

		metrics.RateLimitAllowed.WithLabelValues(limiterMemory).Inc()
		c.Next()
	}
}

// rateLimitKey prefers the authenticated user so clients behind one NAT
// do not share a bucket.
func rateLimitKey(c *gin.Context) string {
	if username := GetUsername(c); username != "" {
		return "user:" + username
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

func rejectRateLimited(c *gin.Context, limiter, key, retryAfter string) {
	metrics.RateLimitRejected.WithLabelValues(limiter).Inc()
	logger.Warn(c.Request.Context(), "rate limit exceeded",
		"limiter", limiter,
		"key", key,
	)

	c.Header("Retry-After", retryAfter)
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "Rate limit exceeded. Please try again later.",
	})
}
