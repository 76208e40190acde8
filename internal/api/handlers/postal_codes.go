package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"postcode-geo-service/internal/api/dto"
	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/postcode"

	"github.com/go-chi/chi/v5"
)

const (
	defaultBatchDelayMs = 1000
	maxBatchDelayMs     = 5000
	maxBatchCodes       = 50
	defaultNearestK     = 1
	maxNearestK         = 20
)

type PostalCodeResolver interface {
	Resolve(ctx context.Context, postalCode string) (domain.Coordinates, bool)
	ResolveBatch(ctx context.Context, postalCodes []string, delay time.Duration) map[string]*domain.Coordinates
}

type PostalCodeTable interface {
	Lookup(code string) (postcode.Known, bool)
	Nearest(c domain.Coordinates, k int) []postcode.Match
}

// PostalCodeHandler exposes the resolver and the reference table.
type PostalCodeHandler struct {
	Resolver PostalCodeResolver
	Table    PostalCodeTable
}

func (h *PostalCodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(chi.URLParam(r, "code"))
	if code == "" {
		writeError(w, r, http.StatusBadRequest, "postal code is required")
		return
	}

	res := dto.PostalCodeResponse{
		PostalCode: code,
		Lat:        domain.DefaultCoordinates.Lat,
		Lng:        domain.DefaultCoordinates.Lng,
	}
	if c, ok := h.Resolver.Resolve(r.Context(), code); ok {
		res.Lat, res.Lng, res.Found = c.Lat, c.Lng, true
	}
	if k, ok := h.Table.Lookup(code); ok {
		res.City = k.City
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PostalCodeHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.PostalCodes) == 0 {
		writeError(w, r, http.StatusBadRequest, "postal_codes is required")
		return
	}
	if len(req.PostalCodes) > maxBatchCodes {
		writeError(w, r, http.StatusBadRequest, "postal_codes must contain at most "+strconv.Itoa(maxBatchCodes)+" entries")
		return
	}

	delayMs := defaultBatchDelayMs
	if req.DelayMs != nil {
		delayMs = *req.DelayMs
	}
	if delayMs < 0 || delayMs > maxBatchDelayMs {
		writeError(w, r, http.StatusBadRequest, "delay_ms must be between 0 and "+strconv.Itoa(maxBatchDelayMs))
		return
	}

	resolved := h.Resolver.ResolveBatch(r.Context(), req.PostalCodes, time.Duration(delayMs)*time.Millisecond)

	res := dto.BatchResponse{Results: make(map[string]*dto.CoordinatesResponse, len(resolved))}
	for code, c := range resolved {
		if c == nil {
			res.Results[code] = nil
			continue
		}
		res.Results[code] = &dto.CoordinatesResponse{Lat: c.Lat, Lng: c.Lng}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PostalCodeHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, r, http.StatusBadRequest, "lat must be a number between -90 and 90")
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		writeError(w, r, http.StatusBadRequest, "lng must be a number between -180 and 180")
		return
	}

	k := defaultNearestK
	if raw := q.Get("k"); raw != "" {
		k, err = strconv.Atoi(raw)
		if err != nil || k < 1 || k > maxNearestK {
			writeError(w, r, http.StatusBadRequest, "k must be between 1 and "+strconv.Itoa(maxNearestK))
			return
		}
	}

	matches := h.Table.Nearest(domain.Coordinates{Lat: lat, Lng: lng}, k)

	res := dto.NearestResponse{Matches: make([]dto.NearestMatchResponse, 0, len(matches))}
	for _, m := range matches {
		res.Matches = append(res.Matches, dto.NearestMatchResponse{
			PostalCode:     m.PostalCode,
			City:           m.Known.City,
			Lat:            m.Known.Coordinates.Lat,
			Lng:            m.Known.Coordinates.Lng,
			DistanceMeters: m.DistanceMeters,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
