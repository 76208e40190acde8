package postcode

import (
	"testing"

	"postcode-geo-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLookup(t *testing.T) {
	k, ok := Default().Lookup("4690")
	require.True(t, ok)
	assert.Equal(t, "Haslev", k.City)
	assert.Equal(t, domain.Coordinates{Lat: 55.2938, Lng: 11.8723}, k.Coordinates)

	_, ok = Default().Lookup("9999")
	assert.False(t, ok)
}

func TestDefaultCodesSorted(t *testing.T) {
	codes := Default().Codes()
	require.Len(t, codes, Default().Len())
	assert.Equal(t, "1000", codes[0])
	assert.IsNonDecreasing(t, codes)
}

func TestNewTableCopiesEntries(t *testing.T) {
	src := map[string]Known{"1234": {City: "Testby"}}
	tbl := NewTable(src)
	src["5678"] = Known{City: "Later"}

	assert.Equal(t, 1, tbl.Len())
	_, ok := tbl.Lookup("5678")
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	tbl := NewTable(map[string]Known{
		"1000": {Coordinates: domain.Coordinates{Lat: 55.6761, Lng: 12.5683}, City: "København K"},
		"5000": {Coordinates: domain.Coordinates{Lat: 55.3959, Lng: 10.3883}, City: "Odense C"},
		"4690": {Coordinates: domain.Coordinates{Lat: 55.2938, Lng: 11.8723}, City: "Haslev"},
	})

	// Just outside Haslev.
	got := tbl.Nearest(domain.Coordinates{Lat: 55.30, Lng: 11.88}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "4690", got[0].PostalCode)
	assert.Equal(t, "1000", got[1].PostalCode)
	assert.Less(t, got[0].DistanceMeters, 2000.0)
}

func TestNearestRanksByGroundDistance(t *testing.T) {
	// At 70°N a degree of longitude is much shorter than the index scale
	// assumes, so the planar order of these two is reversed.
	tbl := NewTable(map[string]Known{
		"0001": {Coordinates: domain.Coordinates{Lat: 70.10, Lng: 20.0}, City: "North"},
		"0002": {Coordinates: domain.Coordinates{Lat: 70.0, Lng: 20.25}, City: "East"},
		"0003": {Coordinates: domain.Coordinates{Lat: 72.0, Lng: 25.0}, City: "Far"},
	})
	origin := domain.Coordinates{Lat: 70.0, Lng: 20.0}

	got := tbl.Nearest(origin, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "0002", got[0].PostalCode)
	assert.Less(t, got[0].DistanceMeters, Haversine(origin, domain.Coordinates{Lat: 70.10, Lng: 20.0}))

	got = tbl.Nearest(origin, 2)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"0002", "0001"}, []string{got[0].PostalCode, got[1].PostalCode})
}

func TestNearestClampsK(t *testing.T) {
	tbl := NewTable(map[string]Known{
		"1000": {Coordinates: domain.Coordinates{Lat: 55.6761, Lng: 12.5683}},
	})

	assert.Len(t, tbl.Nearest(domain.Coordinates{Lat: 56, Lng: 10}, 5), 1)
	assert.Empty(t, tbl.Nearest(domain.Coordinates{Lat: 56, Lng: 10}, 0))
}

func TestHaversine(t *testing.T) {
	copenhagen := domain.Coordinates{Lat: 55.6761, Lng: 12.5683}
	odense := domain.Coordinates{Lat: 55.3959, Lng: 10.3883}

	d := Haversine(copenhagen, odense)
	assert.InDelta(t, 140000, d, 5000)
	assert.Zero(t, Haversine(odense, odense))
}
