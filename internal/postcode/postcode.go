// Package postcode holds the compiled-in Danish postal code reference table
// and a spatial index over it for reverse lookups.
package postcode

import (
	"math"
	"sort"
	"sync"

	"postcode-geo-service/internal/domain"

	"github.com/dhconnelly/rtreego"
)

const (
	dimensions   = 2
	minChildren  = 4
	maxChildren  = 16
	tolerance    = 0.0001
	nearestSlack = 8
	earthRadius  = 6371000.0 // metres

	// Longitude degrees shrink with latitude; scaling by cos(56°) keeps
	// planar distances in the index close to ground distances across Denmark.
	lngScale = 0.5591929034707468
)

// A known postal code: its reference coordinate and locality label.
type Known struct {
	Coordinates domain.Coordinates
	City        string
}

// A reverse lookup result.
type Match struct {
	PostalCode     string
	Known          Known
	DistanceMeters float64
}

type spatialCode struct {
	code string
	rect *rtreego.Rect
}

func (s *spatialCode) Bounds() *rtreego.Rect { return s.rect }

// Table is an immutable postal code reference table. It is safe for
// concurrent use.
type Table struct {
	entries map[string]Known
	tree    *rtreego.Rtree
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the table built from the compiled-in reference data.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(table)
	})
	return defaultTable
}

// NewTable builds a table from entries. The map is copied.
func NewTable(entries map[string]Known) *Table {
	t := &Table{
		entries: make(map[string]Known, len(entries)),
		tree:    rtreego.NewTree(dimensions, minChildren, maxChildren),
	}
	for code, k := range entries {
		t.entries[code] = k
		t.tree.Insert(&spatialCode{code: code, rect: indexPoint(k.Coordinates).ToRect(tolerance)})
	}
	return t
}

// Lookup returns the reference entry for code.
func (t *Table) Lookup(code string) (Known, bool) {
	k, ok := t.entries[code]
	return k, ok
}

// Len reports the number of postal codes in the table.
func (t *Table) Len() int { return len(t.entries) }

// Codes returns all postal codes in ascending order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.entries))
	for c := range t.entries {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Nearest returns up to k table entries closest to c, nearest first.
func (t *Table) Nearest(c domain.Coordinates, k int) []Match {
	if k <= 0 || len(t.entries) == 0 {
		return []Match{}
	}
	if k > len(t.entries) {
		k = len(t.entries)
	}

	// The index is planar, so over-fetch and let haversine pick the final k.
	candidates := 2 * k
	if candidates < k+nearestSlack {
		candidates = k + nearestSlack
	}
	if candidates > len(t.entries) {
		candidates = len(t.entries)
	}
	results := t.tree.NearestNeighbors(candidates, indexPoint(c))

	out := make([]Match, 0, len(results))
	for _, r := range results {
		sc, ok := r.(*spatialCode)
		if !ok || sc == nil {
			continue
		}
		known := t.entries[sc.code]
		out = append(out, Match{
			PostalCode:     sc.code,
			Known:          known,
			DistanceMeters: Haversine(c, known.Coordinates),
		})
	}

	// Index order is planar; settle ties and scale error on true distance.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceMeters != out[j].DistanceMeters {
			return out[i].DistanceMeters < out[j].DistanceMeters
		}
		return out[i].PostalCode < out[j].PostalCode
	})

	if len(out) > k {
		out = out[:k]
	}
	return out
}

func indexPoint(c domain.Coordinates) rtreego.Point {
	return rtreego.Point{c.Lat, c.Lng * lngScale}
}

// Haversine returns the great-circle distance between a and b in metres.
func Haversine(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadius * math.Asin(math.Sqrt(h))
}
