package domain

// Represents a service offered by a provider on the marketplace.
// A Listing is located only by its postal code; coordinates are derived
// at read time and never stored with the listing.
type Listing struct {
	ID           string
	ProviderName string
	ServiceName  string
	Category     string
	Description  string
	PostalCode   string
	Price        string
	Images       []string
}

// A Listing paired with the coordinate used to place it on a map.
// Located is false when the postal code could not be resolved and
// DefaultCoordinates was substituted.
type LocatedListing struct {
	Listing
	Coordinates Coordinates
	Located     bool
}
