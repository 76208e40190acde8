package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/ports"
)

// Category value the search form sends for "no category filter".
const AllCategories = "Alle kategorier"

// BatchResolver is the slice of Resolver that listing enrichment needs.
type BatchResolver interface {
	ResolveBatch(ctx context.Context, postalCodes []string, delay time.Duration) map[string]*domain.Coordinates
}

// ListLocatedListings loads the listings matching filter and places each
// one on the map. Postal codes are resolved once per distinct code through
// ResolveBatch, so remote lookups are paced by delay. Listings whose code
// cannot be resolved get domain.DefaultCoordinates and Located=false.
func ListLocatedListings(
	ctx context.Context,
	filter ports.ListingFilter,
	repo ports.ListingRepository,
	resolver BatchResolver,
	delay time.Duration,
) (_ []*domain.LocatedListing, err error) {
	defer obs.Time(ctx, "list_located_listings")(&err)

	if strings.EqualFold(strings.TrimSpace(filter.Category), AllCategories) {
		filter.Category = ""
	}

	listings, err := repo.ListListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list located listings: list listings: %w", err)
	}

	return EnrichListings(ctx, listings, resolver, delay), nil
}

// EnrichListings pairs each listing with a coordinate, preserving order.
func EnrichListings(
	ctx context.Context,
	listings []*domain.Listing,
	resolver BatchResolver,
	delay time.Duration,
) []*domain.LocatedListing {
	out := make([]*domain.LocatedListing, 0, len(listings))
	if len(listings) == 0 {
		return out
	}

	seen := make(map[string]struct{}, len(listings))
	codes := make([]string, 0, len(listings))
	for _, l := range listings {
		code := strings.TrimSpace(l.PostalCode)
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	resolved := resolver.ResolveBatch(ctx, codes, delay)

	located := 0
	for _, l := range listings {
		ll := &domain.LocatedListing{Listing: *l, Coordinates: domain.DefaultCoordinates}
		if c := resolved[strings.TrimSpace(l.PostalCode)]; c != nil {
			ll.Coordinates = *c
			ll.Located = true
			located++
		}
		out = append(out, ll)
	}

	obs.FromContext(ctx).
		WithField("listings", len(listings)).
		WithField("postal_codes", len(codes)).
		WithField("located", located).
		Info("listings enriched")

	return out
}
