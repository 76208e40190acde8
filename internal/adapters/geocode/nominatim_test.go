package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNominatim(t *testing.T, h http.HandlerFunc) *NominatimClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewNominatimClient(srv.URL, "test-agent/1.0", WithRateLimit(0))
	require.NoError(t, err)
	return c
}

func TestNominatimSearchPostalCode(t *testing.T) {
	c := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))

		q := r.URL.Query()
		assert.Equal(t, "4690", q.Get("postalcode"))
		assert.Equal(t, "Denmark", q.Get("country"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, "da", q.Get("accept-language"))

		_, _ = w.Write([]byte(`[{"lat":"55.3247","lon":"11.9671","display_name":"Haslev, Faxe Kommune"}]`))
	})

	got, err := c.SearchPostalCode(context.Background(), "4690")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Coordinates{Lat: 55.3247, Lng: 11.9671}, got[0].Coordinates)
	assert.Equal(t, "Haslev, Faxe Kommune", got[0].DisplayName)
}

func TestNominatimEmptyResult(t *testing.T) {
	c := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	got, err := c.SearchPostalCode(context.Background(), "0000")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNominatimUnexpectedPayload(t *testing.T) {
	c := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	})

	_, err := c.SearchPostalCode(context.Background(), "4690")
	assert.ErrorIs(t, err, ports.ErrUnexpectedPayload)
}

func TestNominatimRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	c := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"lat":"55","lon":"12","display_name":"x"}]`))
	})

	got, err := c.SearchPostalCode(context.Background(), "1000")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNominatimDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	c := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.SearchPostalCode(context.Background(), "1000")
	var se *HTTPStatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNominatimPacesRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := NewNominatimClient(srv.URL, "test-agent/1.0", WithRateLimit(100*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := c.SearchPostalCode(context.Background(), "1000")
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 190*time.Millisecond)
}

func TestNewNominatimClientRequiresUserAgent(t *testing.T) {
	_, err := NewNominatimClient("", " ")
	assert.Error(t, err)
}
