package main

import (
	"context"
	"strings"

	"postcode-geo-service/internal/adapters/repositories"
	"postcode-geo-service/internal/config"
	"postcode-geo-service/internal/platform/db"
	"postcode-geo-service/internal/platform/obs"
)

// dbtool prepares a database for the server: it creates the schema and
// loads the listing seed file.
func main() {
	log := obs.Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := obs.Configure(cfg.LogLevel, nil); err != nil {
		log.Fatal(err)
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Info("Schema ready.")

	log.WithField("seed_path", cfg.SeedPath).Info("Seeding database...")
	n, err := repositories.SeedFromJSON(ctx, conn, cfg.DBDriver, cfg.SeedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.WithField("listings", n).Info("Seeding complete.")
}
