package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"postcode-geo-service/internal/adapters/cache"
	"postcode-geo-service/internal/adapters/geocode"
	"postcode-geo-service/internal/adapters/repositories"
	"postcode-geo-service/internal/api"
	"postcode-geo-service/internal/config"
	"postcode-geo-service/internal/platform/db"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/ports"
	"postcode-geo-service/internal/postcode"
	"postcode-geo-service/internal/services"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Nominatim, cache backend) behind ports and starts the HTTP server.
func main() {
	log := obs.Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := obs.Configure(cfg.LogLevel, nil); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DBDriver == db.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabaseURL), 0o755); err != nil {
			log.Fatal(err)
		}
	}
	conn, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(ctx, conn, cfg.DBDriver, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	geocodeCache, closeCache, err := newGeocodeCache(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	nominatim, err := geocode.NewNominatimClient(cfg.NominatimURL, cfg.NominatimUserAgent)
	if err != nil {
		log.Fatal(err)
	}

	// The resolver reaches the proxy over HTTP, normally this process's own listener.
	geocoder, err := geocode.NewHTTPGeocoder(cfg.GeocodeBaseURL, cfg.GeocodeTimeout)
	if err != nil {
		log.Fatal(err)
	}

	table := postcode.Default()
	resolver, err := services.NewResolver(geocodeCache, table, geocoder,
		services.WithResolveTimeout(cfg.GeocodeTimeout))
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(api.Deps{
		Resolver:     resolver,
		Table:        table,
		Searcher:     nominatim,
		Listings:     repositories.NewSQLListingRepository(conn, cfg.DBDriver),
		ListingDelay: services.DefaultBatchDelay,
	})

	// Timeouts are tuned for cold-cache listing enrichment (paced external lookups).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("server shutdown")
		}
	}()

	log.WithField("addr", srv.Addr).
		WithField("geocode_base_url", cfg.GeocodeBaseURL).
		WithField("cache", cfg.CacheBackend).
		Info("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func newGeocodeCache(ctx context.Context, cfg *config.Config) (ports.GeocodeCache, func(), error) {
	if cfg.CacheBackend != config.CacheRedis {
		return cache.NewMemoryGeocodeCache(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("geocode cache: ping redis %s: %w", cfg.RedisAddr, err)
	}
	return cache.NewRedisGeocodeCache(client, cfg.RedisTTL), func() { client.Close() }, nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, driver, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if seedPath == "" {
		return nil
	}
	n, err := repositories.SeedFromJSON(ctx, conn, driver, seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	obs.FromContext(ctx).WithField("listings", n).Info("seed loaded")

	return nil
}
