package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EntityCache is a disposable read cache over entity listings (venues,
// categories:<venue>, products:<venue>, venue-staff:<venue>). It is never
// authoritative: every successful mutation invalidates the affected keys and
// the next read repopulates from Postgres.
type EntityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// ErrCacheMiss is returned when a key is absent or the cache is unavailable.
var ErrCacheMiss = errors.New("cache miss")

// Cache keys, one per entity listing.
func KeyVenues() string                  { return "venues" }
func KeyCategories(venueID string) string { return "categories:" + venueID }
func KeyProducts(venueID string) string   { return "products:" + venueID }
func KeyVenueStaff(venueID string) string { return "venue-staff:" + venueID }

// NewEntityCache wraps a Redis client. A zero ttl stores entries without
// expiry; invalidation on mutation is what keeps readers current.
func NewEntityCache(r *Redis, ttl time.Duration, logger *zap.Logger) *EntityCache {
	var client *redis.Client
	if r != nil {
		client = r.Client
	}
	return &EntityCache{client: client, ttl: ttl, logger: logger}
}

// Get unmarshals the cached value for key into dest.
func (c *EntityCache) Get(ctx context.Context, key string, dest any) error {
	if c == nil || c.client == nil {
		return ErrCacheMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return ErrCacheMiss
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Stale or incompatible payload; drop it.
		_ = c.client.Del(ctx, key).Err()
		return ErrCacheMiss
	}
	return nil
}

// Set stores value under key. Failures are logged, not surfaced: the cache
// must never fail a read path.
func (c *EntityCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes the given keys after a mutation.
func (c *EntityCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
