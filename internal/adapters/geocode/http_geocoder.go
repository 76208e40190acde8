package geocode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/ports"
)

const maxBodyBytes = 1 << 20

// HTTPGeocoder resolves postal codes through the geocode proxy endpoint
// (GET {base}/api/geocode?postalCode=...). It issues exactly one request per
// call and never retries.
type HTTPGeocoder struct {
	session *http.Client
	baseURL string
}

func NewHTTPGeocoder(baseURL string, timeout time.Duration) (*HTTPGeocoder, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("geocode base URL is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPGeocoder{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

func (g *HTTPGeocoder) Geocode(ctx context.Context, postalCode string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.remote")(&err)

	req, err := newRequest(ctx, http.MethodGet, g.baseURL+"/api/geocode", nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", postalCode, err)
	}
	q := req.URL.Query()
	q.Set("postalCode", postalCode)
	req.URL.RawQuery = q.Encode()

	resp, err := do(g.session, req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", postalCode, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: read body: %w", postalCode, err)
	}

	c, err := decodeCoordinates(body)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", postalCode, err)
	}

	return c, nil
}

// decodeCoordinates accepts either a Nominatim-style array or the proxy's
// {lat, lng} object. Anything else, including an {error} object, is
// reported as ports.ErrNotFound.
func decodeCoordinates(body []byte) (domain.Coordinates, error) {
	switch firstByte(body) {
	case '[':
		var places []place
		if err := json.Unmarshal(body, &places); err != nil {
			return domain.Coordinates{}, fmt.Errorf("%w: malformed array payload: %v", ports.ErrNotFound, err)
		}
		if len(places) == 0 {
			return domain.Coordinates{}, fmt.Errorf("%w: empty result", ports.ErrNotFound)
		}
		p := places[0]
		if !p.Lat.Set || !p.Lon.Set {
			return domain.Coordinates{}, fmt.Errorf("%w: result without lat/lon", ports.ErrNotFound)
		}
		return domain.Coordinates{Lat: p.Lat.Value, Lng: p.Lon.Value}, nil

	case '{':
		var r proxyResult
		if err := json.Unmarshal(body, &r); err != nil {
			return domain.Coordinates{}, fmt.Errorf("%w: malformed object payload: %v", ports.ErrNotFound, err)
		}
		if hasError(r.Error) {
			return domain.Coordinates{}, fmt.Errorf("%w: endpoint reported %s", ports.ErrNotFound, r.Error)
		}
		// Zero is treated as absent, matching what the proxy never emits for Denmark.
		if r.Lat.Set && r.Lng.Set && r.Lat.Value != 0 && r.Lng.Value != 0 {
			return domain.Coordinates{Lat: r.Lat.Value, Lng: r.Lng.Value}, nil
		}
	}

	return domain.Coordinates{}, fmt.Errorf("%w: unrecognised payload", ports.ErrNotFound)
}

func hasError(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false", `""`:
		return false
	}
	return true
}
