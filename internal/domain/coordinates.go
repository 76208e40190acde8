package domain

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geographic centre of Denmark. Used when a postal code cannot be resolved
// but a renderable point is still required.
var DefaultCoordinates = Coordinates{Lat: 56.2639, Lng: 9.5018}
