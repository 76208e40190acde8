package dto

type ListingResponse struct {
	ID           string   `json:"id"`
	ProviderName string   `json:"provider_name"`
	ServiceName  string   `json:"service_name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	PostalCode   string   `json:"postal_code"`
	Price        string   `json:"price"`
	Images       []string `json:"images"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Located      bool     `json:"located"`
}

type ListListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
}
