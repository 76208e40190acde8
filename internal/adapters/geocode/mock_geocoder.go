package geocode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/ports"
)

// MockGeocoder answers from a fixed map and records every call. Unknown
// postal codes yield ports.ErrNotFound. Delay, when set, is applied before
// answering and honours context cancellation.
type MockGeocoder struct {
	mu    sync.Mutex
	m     map[string]domain.Coordinates
	calls map[string]int
	Delay time.Duration
	Err   error
}

func NewMockGeocoder(known map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(known))
	for k, v := range known {
		m[k] = v
	}
	return &MockGeocoder{m: m, calls: make(map[string]int)}
}

func (g *MockGeocoder) Geocode(ctx context.Context, postalCode string) (domain.Coordinates, error) {
	g.mu.Lock()
	g.calls[postalCode]++
	delay, failWith := g.Delay, g.Err
	c, ok := g.m[postalCode]
	g.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.Coordinates{}, ctx.Err()
		case <-timer.C:
		}
	}

	if failWith != nil {
		return domain.Coordinates{}, failWith
	}
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: %q", ports.ErrNotFound, postalCode)
	}
	return c, nil
}

// Calls reports how many lookups were made for postalCode.
func (g *MockGeocoder) Calls(postalCode string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[postalCode]
}

// TotalCalls reports the number of lookups across all postal codes.
func (g *MockGeocoder) TotalCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		n += c
	}
	return n
}
