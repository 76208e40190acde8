package ports

import (
	"context"
	"errors"
	"postcode-geo-service/internal/domain"
)

// ErrNotFound reports that a geocoding source has no usable coordinate for
// a postal code. Remote adapters wrap it for empty, error-bearing and
// unrecognised payloads.
var ErrNotFound = errors.New("postal code not found")

// ErrUnexpectedPayload reports an upstream body whose shape the adapter does
// not recognise.
var ErrUnexpectedPayload = errors.New("unexpected response format from geocoding service")

// Contract for resolving a postal code against a remote geocoding source.
type Geocoder interface {
	// Return the coordinate for postalCode, or an error wrapping ErrNotFound
	// when the source answered but had no usable result.
	Geocode(ctx context.Context, postalCode string) (domain.Coordinates, error)
}

// A single upstream geocoding match, as forwarded by the geocode proxy.
type GeocodeMatch struct {
	Coordinates domain.Coordinates
	DisplayName string
}

// Contract for the third-party service sitting behind the geocode proxy.
type PostalCodeSearcher interface {
	SearchPostalCode(ctx context.Context, postalCode string) ([]GeocodeMatch, error)
}
