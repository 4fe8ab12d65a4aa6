// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deolhonanota/backend/internal/application/adapter"
)

// reportKeyPattern matches every cached report entry. All report keys share
// the "report:" prefix so invalidation can sweep them in one pass.
const reportKeyPattern = "report:*"

// redisReportCache implements adapter.ReportCache on a Redis client. Cache
// failures never surface to callers: a failed read is a miss and a failed
// write leaves the report to be recomputed on the next request.
type redisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache creates a new Redis-backed report cache.
func NewRedisReportCache(client *redis.Client) adapter.ReportCache {
	return &redisReportCache{
		client: client,
	}
}

// Get retrieves a cached payload by key.
func (c *redisReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Report cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a payload under the key with the given TTL.
func (c *redisReportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// InvalidateAll removes every cached report entry.
func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, reportKeyPattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
