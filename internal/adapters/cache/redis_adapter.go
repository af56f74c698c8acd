package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/providers"
	redisclient "github.com/atharvaaa699/mishika/internal/infrastructure/clients/redis"
)

// RedisRateLimitStore implements RateLimitStore with one expiring counter per key
type RedisRateLimitStore struct {
	client *redisclient.Client
	prefix string
}

// NewRedisRateLimitStore creates a Redis-backed rate limit store
func NewRedisRateLimitStore(client *redisclient.Client) providers.RateLimitStore {
	return &RedisRateLimitStore{
		client: client,
		prefix: "ratelimit:",
	}
}

// Increment bumps the counter and starts its window on the first hit
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	redisKey := s.prefix + key

	pipe := s.client.Client().TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	ttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	remaining := ttl.Val()
	if remaining <= 0 {
		remaining = window
	}
	return incr.Val(), remaining, nil
}
