package security

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles login attempts per client IP using a Redis
// counter window.
type RateLimiter struct {
	redis   *redis.Client
	maxHits int
	window  time.Duration
}

func NewRateLimiter(redisClient *redis.Client, maxHits int, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: redisClient, maxHits: maxHits, window: window}
}

// AllowLogin counts the attempt and reports whether it stays within the
// window's budget. Redis failures fail open so an outage never locks
// every user out, but the error is surfaced for logging.
func (r *RateLimiter) AllowLogin(ctx context.Context, ip string) (bool, error) {
	key := fmt.Sprintf("login:%s", ip)

	count, err := r.redis.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		r.redis.Expire(ctx, key, r.window)
	}
	return count <= int64(r.maxHits), nil
}

// IsSuspiciousUserAgent flags user agents that match common bot
// patterns.
func (r *RateLimiter) IsSuspiciousUserAgent(ua string) bool {
	suspicious := []string{"bot", "crawler", "spider", "scraper"}
	for _, pattern := range suspicious {
		if strings.Contains(strings.ToLower(ua), pattern) {
			return true
		}
	}
	return false
}
