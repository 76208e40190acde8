package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "geocode:postal:"
	// Stored for negative entries so they stay distinct from missing keys.
	negativeValue = "null"
)

// RedisGeocodeCache shares resolution outcomes between replicas.
// Entries expire after ttl; a zero ttl keeps them until evicted by Redis.
type RedisGeocodeCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisGeocodeCache(client redis.UniversalClient, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

func (r *RedisGeocodeCache) Get(ctx context.Context, postalCode string) (_ ports.CacheEntry, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.redis.Get")(&err)

	if r.client == nil {
		return ports.CacheEntry{}, false, errors.New("geocode cache: redis client is nil")
	}

	raw, err := r.client.Get(ctx, redisKeyPrefix+postalCode).Result()
	if errors.Is(err, redis.Nil) {
		return ports.CacheEntry{}, false, nil
	}
	if err != nil {
		return ports.CacheEntry{}, false, fmt.Errorf("get geocode cache %q: %w", postalCode, err)
	}

	if raw == negativeValue {
		return ports.CacheEntry{Found: false}, true, nil
	}

	var c domain.Coordinates
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return ports.CacheEntry{}, false, fmt.Errorf("get geocode cache %q: decode value: %w", postalCode, err)
	}

	return ports.CacheEntry{Coordinates: c, Found: true}, true, nil
}

func (r *RedisGeocodeCache) Put(ctx context.Context, postalCode string, entry ports.CacheEntry) error {
	if r.client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if strings.TrimSpace(postalCode) == "" {
		return errors.New("insert geocode cache: empty postal code key")
	}

	value := negativeValue
	if entry.Found {
		b, err := json.Marshal(entry.Coordinates)
		if err != nil {
			return fmt.Errorf("insert geocode cache %q: encode value: %w", postalCode, err)
		}
		value = string(b)
	}

	if err := r.client.Set(ctx, redisKeyPrefix+postalCode, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache %q: %w", postalCode, err)
	}

	return nil
}
