package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGeocodeCacheNegativeEntryIsDistinctFromMiss(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryGeocodeCache()

	_, ok, err := c.Get(ctx, "9999")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "9999", ports.CacheEntry{Found: false}))

	e, ok, err := c.Get(ctx, "9999")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, e.Found)
}

func TestMemoryGeocodeCacheStoresCoordinates(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryGeocodeCache()
	want := domain.Coordinates{Lat: 55.2938, Lng: 11.8723}

	require.NoError(t, c.Put(ctx, "4690", ports.CacheEntry{Coordinates: want, Found: true}))

	e, ok, err := c.Get(ctx, "4690")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, e.Found)
	assert.Equal(t, want, e.Coordinates)
}

func TestMemoryGeocodeCacheRejectsEmptyKey(t *testing.T) {
	assert.Error(t, NewMemoryGeocodeCache().Put(context.Background(), " ", ports.CacheEntry{}))
}

func TestMemoryGeocodeCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryGeocodeCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := fmt.Sprintf("%04d", i)
			_ = c.Put(ctx, code, ports.CacheEntry{Found: i%2 == 0})
			_, _, _ = c.Get(ctx, code)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
