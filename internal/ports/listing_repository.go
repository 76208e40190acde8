package ports

import (
	"context"
	"postcode-geo-service/internal/domain"
)

// Search criteria for listings. Empty fields do not filter.
type ListingFilter struct {
	Category   string
	PostalCode string
	Keyword    string
}

// Port: a boundary for retrieving Listing entities from a data source.
type ListingRepository interface {
	// Retrieve listings matching filter, newest first.
	ListListings(ctx context.Context, filter ListingFilter) ([]*domain.Listing, error)
}
