package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PostalCodeResponse struct {
	PostalCode string  `json:"postal_code"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Found      bool    `json:"found"`
	City       string  `json:"city,omitempty"`
}

type BatchRequest struct {
	PostalCodes []string `json:"postal_codes"`
	DelayMs     *int     `json:"delay_ms"`
}

// Results holds one entry per distinct requested code; null means not found.
type BatchResponse struct {
	Results map[string]*CoordinatesResponse `json:"results"`
}

type NearestMatchResponse struct {
	PostalCode     string  `json:"postal_code"`
	City           string  `json:"city"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	DistanceMeters float64 `json:"distance_meters"`
}

type NearestResponse struct {
	Matches []NearestMatchResponse `json:"matches"`
}
