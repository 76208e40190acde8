package cache

import (
	"context"
	"testing"
	"time"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, time.Hour)
	want := domain.Coordinates{Lat: 55.4038, Lng: 12.1823}

	_, ok, err := c.Get(ctx, "4000")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "4000", ports.CacheEntry{Coordinates: want, Found: true}))

	e, ok, err := c.Get(ctx, "4000")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, e.Found)
	assert.Equal(t, want, e.Coordinates)
}

func TestRedisGeocodeCacheNegativeEntry(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, time.Hour)

	require.NoError(t, c.Put(ctx, "9999", ports.CacheEntry{Found: false}))

	raw, err := mr.Get(redisKeyPrefix + "9999")
	require.NoError(t, err)
	assert.Equal(t, negativeValue, raw)

	e, ok, err := c.Get(ctx, "9999")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, e.Found)
}

func TestRedisGeocodeCacheTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, time.Minute)

	require.NoError(t, c.Put(ctx, "5000", ports.CacheEntry{Found: true}))
	assert.Equal(t, time.Minute, mr.TTL(redisKeyPrefix+"5000"))

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "5000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisGeocodeCacheCorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, 0)
	require.NoError(t, mr.Set(redisKeyPrefix+"1000", "{not json"))

	_, _, err := c.Get(context.Background(), "1000")
	assert.ErrorContains(t, err, "decode value")
}

func TestRedisGeocodeCacheUnavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, 0)
	mr.Close()

	_, _, err := c.Get(context.Background(), "1000")
	assert.Error(t, err)
}
