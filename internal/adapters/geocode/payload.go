package geocode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// flexFloat accepts a JSON number or a numeric string. Nominatim encodes
// coordinates as strings; the proxy re-encodes them as numbers.
type flexFloat struct {
	Value float64
	Set   bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse coordinate %q: %w", s, err)
		}
		f.Value, f.Set = v, true
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value, f.Set = v, true
	return nil
}

// A Nominatim search hit, also the element shape of an array-style payload.
type place struct {
	Lat         flexFloat `json:"lat"`
	Lon         flexFloat `json:"lon"`
	DisplayName string    `json:"display_name"`
}

// The proxy's object-style payload, either a result or an error.
type proxyResult struct {
	Lat         flexFloat       `json:"lat"`
	Lng         flexFloat       `json:"lng"`
	DisplayName string          `json:"display_name"`
	PostalCode  string          `json:"postalCode"`
	Error       json.RawMessage `json:"error"`
}

func firstByte(b []byte) byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
