package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabinshresthaaa/CoverPage/pkg/logger"
	"github.com/rabinshresthaaa/CoverPage/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimit shares a fixed-window limit across instances. Each client
// may make rps*window+burst requests per window. If Redis is unreachable the
// request is let through.
func RedisRateLimit(client *redis.Client, rps float64, burst int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		return RateLimit(rps, burst, window)
	}

	windowSeconds := int64(window.Seconds())
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	allowed := int64(rps*float64(windowSeconds)) + int64(burst)
	retryAfter := strconv.FormatInt(windowSeconds, 10)
	ttl := time.Duration(windowSeconds+1) * time.Second

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rateLimitKey(c)
		bucket := time.Now().Unix() / windowSeconds
		redisKey := fmt.Sprintf("coverpage:rl:%s:%d", key, bucket)

		// INCR and EXPIRE run in one transaction so a counter never
		// outlives its window without a TTL.
		var incr *redis.IntCmd
		_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, redisKey)
			pipe.Expire(ctx, redisKey, ttl)
			return nil
		})
		if err != nil {
			logger.Warn(ctx, "rate limit check failed, allowing request", "key", redisKey, "error", err)
			c.Next()
			return
		}
		count := incr.Val()

		if count > allowed {
			rejectRateLimited(c, limiterRedis, key, retryAfter)
			return
		}

		metrics.RateLimitAllowed.WithLabelValues(limiterRedis).Inc()
		c.Next()
	}
}
