package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bulletin:ratelimit"

// RedisRateLimiter counts requests in fixed windows. Every instance shares
// the same counters, so limits hold across replicas.
type RedisRateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 || window <= 0 {
		return Decision{Allowed: true, Limit: limit}, nil
	}

	now := l.now()
	seconds := int64(window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	bucket := now.Unix() / seconds
	redisKey := l.bucketKey(key, window, bucket)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	count := incr.Val()
	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}

	decision := Decision{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
	}
	if !decision.Allowed {
		windowEnd := time.Unix((bucket+1)*seconds, 0)
		decision.RetryAfter = windowEnd.Sub(now)
	}

	return decision, nil
}

// Reset drops every window counter stored for key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	return nil
}

func (l *RedisRateLimiter) bucketKey(key string, window time.Duration, bucket int64) string {
	return fmt.Sprintf("%s:%s:%s:%d", keyPrefix, key, window.String(), bucket)
}
