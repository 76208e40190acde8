package handlers

import (
	"net/http"
	"time"

	"postcode-geo-service/internal/api/dto"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/ports"
	"postcode-geo-service/internal/services"
)

// ListingHandler serves listings placed on the map.
type ListingHandler struct {
	Repo     ports.ListingRepository
	Resolver services.BatchResolver
	Delay    time.Duration
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ports.ListingFilter{
		Category:   q.Get("category"),
		PostalCode: q.Get("postal_code"),
		Keyword:    q.Get("keyword"),
	}

	listings, err := services.ListLocatedListings(r.Context(), filter, h.Repo, h.Resolver, h.Delay)
	if err != nil {
		obs.FromContext(r.Context()).WithError(err).Error("list listings failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListListingsResponse{
		Listings: make([]dto.ListingResponse, 0, len(listings)),
	}
	for _, l := range listings {
		images := l.Images
		if images == nil {
			images = []string{}
		}
		res.Listings = append(res.Listings, dto.ListingResponse{
			ID:           l.ID,
			ProviderName: l.ProviderName,
			ServiceName:  l.ServiceName,
			Category:     l.Category,
			Description:  l.Description,
			PostalCode:   l.PostalCode,
			Price:        l.Price,
			Images:       images,
			Lat:          l.Coordinates.Lat,
			Lng:          l.Coordinates.Lng,
			Located:      l.Located,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
