package ports

import (
	"context"
	"postcode-geo-service/internal/domain"
)

// A cached resolution outcome. Found is false for a negative entry, which
// records that a lookup already failed and must not be repeated.
type CacheEntry struct {
	Coordinates domain.Coordinates
	Found       bool
}

// Port: postal code -> resolution outcome, positive or negative.
type GeocodeCache interface {
	// Return the entry for postalCode and whether one exists.
	Get(ctx context.Context, postalCode string) (CacheEntry, bool, error)
	// Store the entry for postalCode, replacing any previous one.
	Put(ctx context.Context, postalCode string, entry CacheEntry) error
}
