package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"postcode-geo-service/internal/adapters/cache"
	"postcode-geo-service/internal/adapters/geocode"
	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/ports"
	"postcode-geo-service/internal/postcode"
	"postcode-geo-service/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	matches []ports.GeocodeMatch
	err     error
	calls   int
}

func (s *stubSearcher) SearchPostalCode(context.Context, string) ([]ports.GeocodeMatch, error) {
	s.calls++
	return s.matches, s.err
}

type stubListings struct{ listings []*domain.Listing }

func (s *stubListings) ListListings(context.Context, ports.ListingFilter) ([]*domain.Listing, error) {
	return s.listings, nil
}

type fixture struct {
	handler  http.Handler
	searcher *stubSearcher
	geocoder *geocode.MockGeocoder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	g := geocode.NewMockGeocoder(nil)
	resolver, err := services.NewResolver(cache.NewMemoryGeocodeCache(), postcode.Default(), g)
	require.NoError(t, err)

	searcher := &stubSearcher{}
	listings := &stubListings{listings: []*domain.Listing{
		{ID: "a", ServiceName: "Blocked drains", PostalCode: "4690", Images: []string{"a.jpg"}},
		{ID: "b", ServiceName: "Dog walking", PostalCode: "9999"},
	}}

	h := NewRouter(Deps{
		Resolver: resolver,
		Table:    postcode.Default(),
		Searcher: searcher,
		Listings: listings,
	})
	return &fixture{handler: h, searcher: searcher, geocoder: g}
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", decode(t, rec)["error"])
}

func TestUnknownRoute(t *testing.T) {
	rec := newFixture(t).do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestGeocodeProxyCORSAndMethods(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodOptions, "/api/geocode?postalCode=4690", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))

	rec = f.do(t, http.MethodPost, "/api/geocode?postalCode=4690", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Method not allowed", decode(t, rec)["error"])

	assert.Zero(t, f.searcher.calls)
}

func TestGeocodeProxyValidation(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{
		"/api/geocode",
		"/api/geocode?postalCode=",
		"/api/geocode?postalCode=4690&postalCode=4600",
	} {
		rec := f.do(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Missing or invalid postalCode", decode(t, rec)["error"])
	}
	assert.Zero(t, f.searcher.calls)
}

func TestGeocodeProxyResults(t *testing.T) {
	tests := []struct {
		name     string
		matches  []ports.GeocodeMatch
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "found",
			matches: []ports.GeocodeMatch{{
				Coordinates: domain.Coordinates{Lat: 55.3247, Lng: 11.9671},
				DisplayName: "Haslev, Faxe Kommune",
			}},
			wantCode: http.StatusOK,
			wantBody: `{"lat":55.3247,"lng":11.9671,"display_name":"Haslev, Faxe Kommune","postalCode":"4690"}`,
		},
		{
			name:     "empty",
			matches:  []ports.GeocodeMatch{},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Postal code not found"}`,
		},
		{
			name:     "upstream status",
			err:      &geocode.HTTPStatusError{Code: http.StatusServiceUnavailable},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"Geocoding service unavailable","status":503}`,
		},
		{
			name:     "unexpected payload",
			err:      ports.ErrUnexpectedPayload,
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"Invalid response from geocoding service"}`,
		},
		{
			name:     "other failure",
			err:      errors.New("dial tcp: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error","message":"dial tcp: connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.searcher.matches, f.searcher.err = tt.matches, tt.err

			rec := f.do(t, http.MethodGet, "/api/geocode?postalCode=4690", "")
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestGetPostalCode(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/postal-codes/4690", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"postal_code":"4690","lat":55.2938,"lng":11.8723,"found":true,"city":"Haslev"}`,
		rec.Body.String())

	rec = f.do(t, http.MethodGet, "/postal-codes/9999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"postal_code":"9999","lat":56.2639,"lng":9.5018,"found":false}`,
		rec.Body.String())

	assert.Equal(t, 1, f.geocoder.Calls("9999"))
	assert.Zero(t, f.geocoder.Calls("4690"))
}

func TestBatchPostalCodes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/postal-codes/batch",
		`{"postal_codes":["4690","9999","4690"],"delay_ms":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"results":{"4690":{"lat":55.2938,"lng":11.8723},"9999":null}}`,
		rec.Body.String())
	assert.Equal(t, 1, f.geocoder.TotalCalls())
}

func TestBatchPostalCodesValidation(t *testing.T) {
	f := newFixture(t)

	tests := map[string]string{
		"empty list":     `{"postal_codes":[]}`,
		"delay too long": `{"postal_codes":["4690"],"delay_ms":6000}`,
		"negative delay": `{"postal_codes":["4690"],"delay_ms":-1}`,
		"unknown field":  `{"postal_codes":["4690"],"limit":3}`,
		"trailing data":  `{"postal_codes":["4690"]}{}`,
		"not json":       `postal_codes=4690`,
		"too many codes": `{"postal_codes":[` + strings.Repeat(`"1000",`, 50) + `"1000"]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/postal-codes/batch", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
		})
	}
}

func TestNearestPostalCodes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/postal-codes/nearest?lat=55.2938&lng=11.8723&k=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Matches []struct {
			PostalCode     string  `json:"postal_code"`
			City           string  `json:"city"`
			DistanceMeters float64 `json:"distance_meters"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "4690", res.Matches[0].PostalCode)
	assert.Equal(t, "Haslev", res.Matches[0].City)
	assert.Zero(t, res.Matches[0].DistanceMeters)
	assert.Greater(t, res.Matches[1].DistanceMeters, 0.0)
}

func TestNearestPostalCodesValidation(t *testing.T) {
	f := newFixture(t)

	for _, q := range []string{
		"lng=11.8",
		"lat=abc&lng=11.8",
		"lat=95&lng=11.8",
		"lat=55.2&lng=200",
		"lat=55.2&lng=11.8&k=0",
		"lat=55.2&lng=11.8&k=21",
	} {
		rec := f.do(t, http.MethodGet, "/postal-codes/nearest?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestListListings(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/listings?category=Alle+kategorier", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Listings []struct {
			ID      string   `json:"id"`
			Images  []string `json:"images"`
			Lat     float64  `json:"lat"`
			Lng     float64  `json:"lng"`
			Located bool     `json:"located"`
		} `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Listings, 2)

	assert.Equal(t, "a", res.Listings[0].ID)
	assert.True(t, res.Listings[0].Located)
	assert.Equal(t, 55.2938, res.Listings[0].Lat)

	assert.False(t, res.Listings[1].Located)
	assert.Equal(t, 56.2639, res.Listings[1].Lat)
	assert.Equal(t, 9.5018, res.Listings[1].Lng)
	assert.NotNil(t, res.Listings[1].Images)
}

func TestMetricsExposeHTTPRequests(t *testing.T) {
	f := newFixture(t)

	f.do(t, http.MethodGet, "/health", "")
	rec := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `postcode_geo_http_requests_total{method="GET",route="/health",status="200"}`)
}
