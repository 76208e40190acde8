package cache

import (
	"context"
	"errors"
	"strings"
	"sync"

	"postcode-geo-service/internal/ports"
)

// MemoryGeocodeCache keeps resolution outcomes for the life of the process.
// Entries are never evicted. It is safe for concurrent use.
type MemoryGeocodeCache struct {
	mu      sync.RWMutex
	entries map[string]ports.CacheEntry
}

func NewMemoryGeocodeCache() *MemoryGeocodeCache {
	return &MemoryGeocodeCache{entries: make(map[string]ports.CacheEntry)}
}

func (m *MemoryGeocodeCache) Get(_ context.Context, postalCode string) (ports.CacheEntry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[postalCode]
	return e, ok, nil
}

func (m *MemoryGeocodeCache) Put(_ context.Context, postalCode string, entry ports.CacheEntry) error {
	if strings.TrimSpace(postalCode) == "" {
		return errors.New("insert geocode cache: empty postal code key")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[postalCode] = entry
	return nil
}

// Len reports the number of cached postal codes, positive and negative.
func (m *MemoryGeocodeCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
