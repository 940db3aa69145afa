package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter is a fixed-window rate limiter for the public auth endpoints.
// The first hit in a window creates the counter with a TTL; subsequent hits
// increment it until the window expires.
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewLoginLimiter(client *redis.Client, limit int64, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether another request under key fits in the current window.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return count <= l.limit, nil
}
