package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T, ttl time.Duration) (*EntityCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewEntityCache(&Redis{Client: client}, ttl, zap.NewNop()), mr
}

type cachedVenue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestEntityCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()

	var missed []cachedVenue
	assert.ErrorIs(t, cache.Get(ctx, KeyVenues(), &missed), ErrCacheMiss)

	stored := []cachedVenue{{ID: "venue-1", Name: "Taproom"}}
	cache.Set(ctx, KeyVenues(), stored)

	var got []cachedVenue
	require.NoError(t, cache.Get(ctx, KeyVenues(), &got))
	assert.Equal(t, stored, got)
}

func TestEntityCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()

	cache.Set(ctx, KeyCategories("venue-1"), []cachedVenue{{ID: "cat-1"}})
	cache.Set(ctx, KeyProducts("venue-1"), []cachedVenue{{ID: "prod-1"}})
	cache.Invalidate(ctx, KeyCategories("venue-1"), KeyProducts("venue-1"))

	var got []cachedVenue
	assert.ErrorIs(t, cache.Get(ctx, KeyCategories("venue-1"), &got), ErrCacheMiss)
	assert.ErrorIs(t, cache.Get(ctx, KeyProducts("venue-1"), &got), ErrCacheMiss)
}

func TestEntityCacheTTL(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, KeyVenueStaff("venue-1"), []cachedVenue{{ID: "acc-1"}})
	mr.FastForward(2 * time.Minute)

	var got []cachedVenue
	assert.ErrorIs(t, cache.Get(ctx, KeyVenueStaff("venue-1"), &got), ErrCacheMiss)
}

func TestEntityCacheCorruptPayloadDropped(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, mr.Set(KeyVenues(), "not-json"))

	var got []cachedVenue
	assert.ErrorIs(t, cache.Get(ctx, KeyVenues(), &got), ErrCacheMiss)
	assert.False(t, mr.Exists(KeyVenues()), "unreadable entries are evicted")
}

func TestEntityCacheNilSafe(t *testing.T) {
	var cache *EntityCache
	ctx := context.Background()

	var got []cachedVenue
	assert.ErrorIs(t, cache.Get(ctx, KeyVenues(), &got), ErrCacheMiss)
	cache.Set(ctx, KeyVenues(), got)
	cache.Invalidate(ctx, KeyVenues())
}
