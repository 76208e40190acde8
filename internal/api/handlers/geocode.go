package handlers

import (
	"errors"
	"net/http"

	"postcode-geo-service/internal/api/dto"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/ports"
)

// GeocodeHandler is the browser-facing proxy in front of the upstream
// postal code search. It is the endpoint the resolver's HTTP geocoder calls.
type GeocodeHandler struct {
	Searcher ports.PostalCodeSearcher
}

func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET, OPTIONS")
		writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	values := r.URL.Query()["postalCode"]
	if len(values) != 1 || values[0] == "" {
		writeError(w, r, http.StatusBadRequest, "Missing or invalid postalCode")
		return
	}
	postalCode := values[0]
	log := obs.FromContext(r.Context()).WithField("postal_code", postalCode)

	matches, err := h.Searcher.SearchPostalCode(r.Context(), postalCode)
	if err != nil {
		var status interface{ StatusCode() int }
		switch {
		case errors.As(err, &status):
			log.WithError(err).Warn("geocoding upstream returned an error status")
			writeJSON(w, r, http.StatusBadGateway, dto.GeocodeUpstreamError{
				Error:  "Geocoding service unavailable",
				Status: status.StatusCode(),
			})
		case errors.Is(err, ports.ErrUnexpectedPayload):
			log.WithError(err).Warn("geocoding upstream returned an unexpected payload")
			writeError(w, r, http.StatusBadGateway, "Invalid response from geocoding service")
		default:
			log.WithError(err).Error("geocoding failed")
			writeJSON(w, r, http.StatusInternalServerError, dto.GeocodeInternalError{
				Error:   "Internal server error",
				Message: err.Error(),
			})
		}
		return
	}

	if len(matches) == 0 {
		writeError(w, r, http.StatusNotFound, "Postal code not found")
		return
	}

	m := matches[0]
	writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{
		Lat:         m.Coordinates.Lat,
		Lng:         m.Coordinates.Lng,
		DisplayName: m.DisplayName,
		PostalCode:  postalCode,
	})
}
