package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/ports"
	"postcode-geo-service/internal/postcode"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultResolveTimeout = 10 * time.Second
	DefaultBatchDelay     = time.Second
)

// Where a resolution was answered from.
type Source string

const (
	SourceCache  Source = "cache"
	SourceTable  Source = "table"
	SourceRemote Source = "remote"
)

// StaticTable is the read-only postal code reference consulted before the network.
type StaticTable interface {
	Lookup(code string) (postcode.Known, bool)
}

// Resolver maps postal codes to coordinates using, in order, the cache, the
// static reference table and one remote lookup. Every outcome, including
// failure, is cached, and no error ever reaches the caller: anything that
// goes wrong degrades to "not found" and is logged.
//
// Concurrent lookups of the same uncached postal code share one remote
// request. The Resolver is safe for concurrent use.
type Resolver struct {
	cache    ports.GeocodeCache
	table    StaticTable
	geocoder ports.Geocoder
	timeout  time.Duration
	flight   singleflight.Group
}

type ResolverOption func(*Resolver)

// WithResolveTimeout bounds each remote lookup. Defaults to 10 s.
func WithResolveTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewResolver(
	cache ports.GeocodeCache,
	table StaticTable,
	geocoder ports.Geocoder,
	opts ...ResolverOption,
) (*Resolver, error) {
	if cache == nil {
		return nil, errors.New("new resolver: cache must be non-nil")
	}
	if table == nil {
		return nil, errors.New("new resolver: static table must be non-nil")
	}
	if geocoder == nil {
		return nil, errors.New("new resolver: geocoder must be non-nil")
	}

	r := &Resolver{
		cache:    cache,
		table:    table,
		geocoder: geocoder,
		timeout:  DefaultResolveTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Resolve returns the coordinate for postalCode and whether one was found.
func (r *Resolver) Resolve(ctx context.Context, postalCode string) (domain.Coordinates, bool) {
	code := strings.TrimSpace(postalCode)
	if code == "" {
		return domain.Coordinates{}, false
	}

	if c, found, _, hit := r.resolveLocal(ctx, code); hit {
		return c, found
	}

	return r.resolveRemote(ctx, code)
}

// ResolveWithFallback is Resolve with domain.DefaultCoordinates substituted
// for "not found". It always yields a renderable point.
func (r *Resolver) ResolveWithFallback(ctx context.Context, postalCode string) domain.Coordinates {
	if c, ok := r.Resolve(ctx, postalCode); ok {
		return c
	}
	return domain.DefaultCoordinates
}

// ResolveBatch resolves postalCodes one at a time in input order and returns
// a result for every key; nil marks "not found".
//
// delay paces network lookups only: it is waited before each remote lookup
// that follows an earlier remote lookup in the same batch. Cache and table
// hits are never delayed, and duplicate keys reuse the first outcome. If ctx
// ends, the remaining keys map to nil.
func (r *Resolver) ResolveBatch(ctx context.Context, postalCodes []string, delay time.Duration) map[string]*domain.Coordinates {
	results := make(map[string]*domain.Coordinates, len(postalCodes))
	log := obs.FromContext(ctx)

	remoteCalls := 0
	for i, raw := range postalCodes {
		if _, done := results[raw]; done {
			continue
		}

		if ctx.Err() != nil {
			results[raw] = nil
			continue
		}

		code := strings.TrimSpace(raw)
		if code == "" {
			results[raw] = nil
			continue
		}

		c, found, source, hit := r.resolveLocal(ctx, code)
		if !hit {
			if remoteCalls > 0 && delay > 0 && !sleepCtx(ctx, delay) {
				results[raw] = nil
				continue
			}
			remoteCalls++
			c, found = r.resolveRemote(ctx, code)
			source = SourceRemote
		}

		if found {
			coords := c
			results[raw] = &coords
		} else {
			results[raw] = nil
		}

		log.WithFields(logrus.Fields{
			"postal_code": code,
			"source":      string(source),
			"found":       found,
		}).Infof("geocoded %d/%d", i+1, len(postalCodes))
	}

	return results
}

// resolveLocal answers from the cache or the static table without touching
// the network. hit is false when a remote lookup is required.
func (r *Resolver) resolveLocal(ctx context.Context, code string) (c domain.Coordinates, found bool, source Source, hit bool) {
	if e, ok := r.cached(ctx, code); ok {
		obs.RecordLookup(string(SourceCache), e.Found)
		return e.Coordinates, e.Found, SourceCache, true
	}

	if k, ok := r.table.Lookup(code); ok {
		r.store(ctx, code, ports.CacheEntry{Coordinates: k.Coordinates, Found: true})
		obs.RecordLookup(string(SourceTable), true)
		return k.Coordinates, true, SourceTable, true
	}

	return domain.Coordinates{}, false, "", false
}

// resolveRemote performs, or joins, the single in-flight remote lookup for
// code. The shared lookup is detached from the caller's cancellation and
// bounded by the resolver timeout; a caller whose ctx ends first gets
// "not found" while the lookup completes and caches its result.
func (r *Resolver) resolveRemote(ctx context.Context, code string) (domain.Coordinates, bool) {
	ch := r.flight.DoChan(code, func() (any, error) {
		fctx := context.WithoutCancel(ctx)

		// A flight that finished between our cache miss and now already stored the answer.
		if e, ok := r.cached(fctx, code); ok {
			return e, nil
		}

		entry := r.lookup(fctx, code)
		r.store(fctx, code, entry)
		return entry, nil
	})

	select {
	case res := <-ch:
		entry, _ := res.Val.(ports.CacheEntry)
		obs.RecordLookup(string(SourceRemote), entry.Found)
		return entry.Coordinates, entry.Found
	case <-ctx.Done():
		obs.FromContext(ctx).WithField("postal_code", code).WithError(ctx.Err()).
			Warn("geocode abandoned by caller")
		return domain.Coordinates{}, false
	}
}

func (r *Resolver) lookup(ctx context.Context, code string) ports.CacheEntry {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	log := obs.FromContext(ctx).WithField("postal_code", code)
	log.Info("geocoding via remote endpoint")

	c, err := r.geocoder.Geocode(ctx, code)
	if err != nil {
		reason := failureReason(err)
		obs.RecordRemoteFailure(reason)
		log.WithField("reason", reason).WithError(err).Warn("geocode failed, caching negative result")
		return ports.CacheEntry{Found: false}
	}

	return ports.CacheEntry{Coordinates: c, Found: true}
}

func (r *Resolver) cached(ctx context.Context, code string) (ports.CacheEntry, bool) {
	e, ok, err := r.cache.Get(ctx, code)
	if err != nil {
		obs.FromContext(ctx).WithField("postal_code", code).WithError(err).Warn("geocode cache read failed")
		return ports.CacheEntry{}, false
	}
	return e, ok
}

func (r *Resolver) store(ctx context.Context, code string, entry ports.CacheEntry) {
	if err := r.cache.Put(ctx, code, entry); err != nil {
		obs.FromContext(ctx).WithField("postal_code", code).WithError(err).Warn("geocode cache write failed")
	}
}

func failureReason(err error) string {
	if errors.Is(err, ports.ErrNotFound) {
		return "not_found"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	var status interface{ StatusCode() int }
	if errors.As(err, &status) {
		return fmt.Sprintf("status_%d", status.StatusCode())
	}
	return "transport"
}

// sleepCtx waits for d and reports whether it elapsed before ctx ended.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
