package dto

// Body of a successful GET /api/geocode.
type GeocodeResponse struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"display_name"`
	PostalCode  string  `json:"postalCode"`
}

type GeocodeUpstreamError struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

type GeocodeInternalError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
