package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocodeServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/geocode", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPGeocoderObjectPayload(t *testing.T) {
	srv := newGeocodeServer(t, http.StatusOK,
		`{"lat":55.7,"lng":12.4,"display_name":"Herlev, Danmark","postalCode":"2730"}`)

	g, err := NewHTTPGeocoder(srv.URL, time.Second)
	require.NoError(t, err)

	got, err := g.Geocode(context.Background(), "2730")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 55.7, Lng: 12.4}, got)
}

func TestHTTPGeocoderArrayPayload(t *testing.T) {
	srv := newGeocodeServer(t, http.StatusOK,
		`[{"lat":"56.1572","lon":"10.2107","display_name":"Aarhus C"}]`)

	g, err := NewHTTPGeocoder(srv.URL+"/", time.Second)
	require.NoError(t, err)

	got, err := g.Geocode(context.Background(), "8000")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 56.1572, Lng: 10.2107}, got)
}

func TestHTTPGeocoderSendsPostalCodeQuery(t *testing.T) {
	var gotQuery, gotAccept, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("postalCode")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"lat":1,"lng":2}`))
	}))
	defer srv.Close()

	g, err := NewHTTPGeocoder(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), "8000 C")
	require.NoError(t, err)
	assert.Equal(t, "8000 C", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Empty(t, gotContentType, "bodiless GET carries no Content-Type")
}

func TestHTTPGeocoderNotFoundPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"error object", `{"error":"not found"}`},
		{"empty array", `[]`},
		{"object without coordinates", `{"display_name":"somewhere"}`},
		{"zero coordinates", `{"lat":0,"lng":0}`},
		{"scalar", `"hello"`},
		{"non numeric lat", `[{"lat":"north","lon":"10.1"}]`},
		{"truncated", `{"lat":55.1,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newGeocodeServer(t, http.StatusOK, tt.body)
			g, err := NewHTTPGeocoder(srv.URL, time.Second)
			require.NoError(t, err)

			_, err = g.Geocode(context.Background(), "9999")
			assert.ErrorIs(t, err, ports.ErrNotFound)
		})
	}
}

func TestHTTPGeocoderStatusError(t *testing.T) {
	srv := newGeocodeServer(t, http.StatusNotFound, `{"error":"Postal code not found"}`)

	g, err := NewHTTPGeocoder(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), "9999")
	var se *HTTPStatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
}

func TestHTTPGeocoderTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	g, err := NewHTTPGeocoder(srv.URL, 50*time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	_, err = g.Geocode(context.Background(), "9999")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewHTTPGeocoderRequiresBaseURL(t *testing.T) {
	_, err := NewHTTPGeocoder("  ", time.Second)
	assert.Error(t, err)
}
