package api

import (
	"net/http"
	"time"

	"postcode-geo-service/internal/api/handlers"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Dependencies the HTTP layer is wired with.
type Deps struct {
	Resolver     handlers.PostalCodeResolver
	Table        handlers.PostalCodeTable
	Searcher     ports.PostalCodeSearcher
	Listings     ports.ListingRepository
	ListingDelay time.Duration
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	geocodeHandler := &handlers.GeocodeHandler{Searcher: deps.Searcher}
	postalHandler := &handlers.PostalCodeHandler{Resolver: deps.Resolver, Table: deps.Table}
	listingHandler := &handlers.ListingHandler{
		Repo:     deps.Listings,
		Resolver: deps.Resolver,
		Delay:    deps.ListingDelay,
	}

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", obs.MetricsHandler())

	// The proxy answers every method itself so it can emit CORS headers on 405s.
	r.HandleFunc("/api/geocode", geocodeHandler.Geocode)

	r.Route("/postal-codes", func(r chi.Router) {
		r.Get("/nearest", postalHandler.Nearest)
		r.Post("/batch", postalHandler.Batch)
		r.Get("/{code}", postalHandler.Get)
	})

	r.Get("/listings", listingHandler.List)

	return r
}
