// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package existence

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

// Cached fronts a [Resolver] with Redis.
//
// Only positive answers are cached: a missing reference is always re-checked
// against storage, so a newly created genre is visible immediately. Removals
// must call [Cached.Forget] to evict the positive entry.
//
// Redis failures degrade to the underlying resolver and are logged.
type Cached struct {
	next   Resolver
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCached constructs a Redis-backed [Cached] resolver.
func NewCached(next Resolver, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{next: next, client: client, ttl: ttl, logger: logger}
}

// Exists implements [Resolver].
func (cached *Cached) Exists(ctx context.Context, kind Kind, id string) (bool, error) {
	key := cacheKey(kind, id)

	hits, err := cached.client.Exists(ctx, key).Result()
	if err != nil {
		cached.logger.Warn("existence_cache_read_failed", slog.String("key", key), slog.Any("error", err))
	} else if hits > 0 {
		return true, nil
	}

	found, err := cached.next.Exists(ctx, kind, id)
	if err != nil || !found {
		return found, err
	}

	if err := cached.client.Set(ctx, key, 1, cached.ttl).Err(); err != nil {
		cached.logger.Warn("existence_cache_write_failed", slog.String("key", key), slog.Any("error", err))
	}

	return true, nil
}

// Forget implements [Forgetter].
func (cached *Cached) Forget(ctx context.Context, kind Kind, id string) error {
	return cached.client.Del(ctx, cacheKey(kind, id)).Err()
}

// cacheKey builds the Redis key for a reference.
func cacheKey(kind Kind, id string) string {
	return constants.RedisPrefixExistence + string(kind) + ":" + id
}
