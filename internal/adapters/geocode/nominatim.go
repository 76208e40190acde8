package geocode

import (
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

	"golang.org/x/time/rate"
)

const (
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	nominatimAttempts   = 3
)

// NominatimClient searches OpenStreetMap Nominatim for Danish postal codes.
//
// Nominatim's usage policy allows one request per second and requires an
// identifying User-Agent. All calls share one token bucket, so concurrent
// callers queue rather than exceed the limit. The client is safe for
// concurrent use.
type NominatimClient struct {
	session   *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
}

type NominatimOption func(*NominatimClient)

// WithRateLimit overrides the default one-request-per-second pacing.
func WithRateLimit(every time.Duration) NominatimOption {
	return func(c *NominatimClient) {
		c.limiter = rate.NewLimiter(rate.Every(every), 1)
	}
}

// WithHTTPClient replaces the default client (10 s timeout).
func WithHTTPClient(hc *http.Client) NominatimOption {
	return func(c *NominatimClient) { c.session = hc }
}

func NewNominatimClient(baseURL, userAgent string, opts ...NominatimOption) (*NominatimClient, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultNominatimURL
	}

	c := &NominatimClient{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SearchPostalCode returns at most one match for postalCode in Denmark.
// An empty slice means Nominatim knows no such postal code.
func (c *NominatimClient) SearchPostalCode(ctx context.Context, postalCode string) (_ []ports.GeocodeMatch, err error) {
	defer obs.Time(ctx, "nominatim.search")(&err)

	endpoint := c.baseURL + "/search"
	headers := map[string]string{"User-Agent": c.userAgent}

	resp, err := doWithRetry(ctx, c.session, nominatimAttempts, c.limiter.Wait, func() (*http.Request, error) {
		req, err := newRequest(ctx, http.MethodGet, endpoint, headers)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("postalcode", postalCode)
		q.Set("country", "Denmark")
		q.Set("format", "json")
		q.Set("limit", "1")
		q.Set("accept-language", "da")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("nominatim search %q: %w", postalCode, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("nominatim search %q: read body: %w", postalCode, err)
	}

	if firstByte(body) != '[' {
		return nil, fmt.Errorf("nominatim search %q: %w", postalCode, ports.ErrUnexpectedPayload)
	}

	var places []place
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("nominatim search %q: %w: %v", postalCode, ports.ErrUnexpectedPayload, err)
	}

	out := make([]ports.GeocodeMatch, 0, len(places))
	for _, p := range places {
		if !p.Lat.Set || !p.Lon.Set {
			continue
		}
		out = append(out, ports.GeocodeMatch{
			Coordinates: domain.Coordinates{Lat: p.Lat.Value, Lng: p.Lon.Value},
			DisplayName: p.DisplayName,
		})
	}

	return out, nil
}
