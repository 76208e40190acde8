package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"postcode-geo-service/internal/platform/db"

	"github.com/google/uuid"
)

// Initialize the listings schema. The statements are portable between
// SQLite and Postgres.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createListingsQuery := `
	CREATE TABLE IF NOT EXISTS listings (
		id TEXT PRIMARY KEY,
		provider_name TEXT NOT NULL,
		service_name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		category_norm TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL,
		price TEXT NOT NULL DEFAULT '',
		images TEXT NOT NULL DEFAULT '[]',
		search_text TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	`

	createCategoryIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_listings_category
	ON listings(category_norm);
	`

	createCreatedIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_listings_created_at
	ON listings(created_at);
	`

	statements := []string{
		createListingsQuery,
		createCategoryIndexQuery,
		createCreatedIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// ListingSeed is one record of the seed file. Field names follow the
// marketplace's document format.
type ListingSeed struct {
	ID           string   `json:"id"`
	ProviderName string   `json:"name"`
	ServiceName  string   `json:"serviceName"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	PostalCode   string   `json:"postalCode"`
	Price        string   `json:"price"`
	Images       []string `json:"images"`
	CreatedAt    string   `json:"createdAt"`
}

// Populate the listings table from a JSON file. Records without an id are
// given a random UUID; existing ids are overwritten. It returns the number
// of listings written.
func SeedFromJSON(ctx context.Context, conn *sql.DB, driver, jsonPath string) (int, error) {
	if conn == nil {
		return 0, errors.New("seed listings: DB is nil")
	}

	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed listings: read %q: %w", jsonPath, err)
	}

	var data []ListingSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed listings: parse json: %w", err)
	}

	rows, err := normalizeSeeds(data, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed listings: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := db.Rebind(driver, `
	INSERT INTO listings (
		id,
		provider_name,
		service_name,
		category,
		category_norm,
		description,
		postal_code,
		price,
		images,
		search_text,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		provider_name = excluded.provider_name,
		service_name = excluded.service_name,
		category = excluded.category,
		category_norm = excluded.category_norm,
		description = excluded.description,
		postal_code = excluded.postal_code,
		price = excluded.price,
		images = excluded.images,
		search_text = excluded.search_text,
		created_at = excluded.created_at;
	`)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("seed listings: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		images, err := json.Marshal(l.Images)
		if err != nil {
			return 0, fmt.Errorf("seed listings: encode images id=%s: %w", l.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			l.ID, l.ProviderName, l.ServiceName, l.Category, normalizeText(l.Category),
			l.Description, l.PostalCode, l.Price, string(images), searchText(l), l.CreatedAt,
		); err != nil {
			return 0, fmt.Errorf("seed listings: insert id=%s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed listings: commit tx: %w", err)
	}

	return len(rows), nil
}

func normalizeSeeds(data []ListingSeed, now time.Time) ([]ListingSeed, error) {
	rows := make([]ListingSeed, 0, len(data))
	for i, item := range data {
		item.ServiceName = strings.TrimSpace(item.ServiceName)
		if item.ServiceName == "" {
			return nil, fmt.Errorf("seed listings: item at index %d: serviceName cannot be empty", i+1)
		}

		item.PostalCode = strings.TrimSpace(item.PostalCode)
		if item.PostalCode == "" {
			return nil, fmt.Errorf("seed listings: item at index %d: postalCode cannot be empty", i+1)
		}

		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			item.ID = uuid.NewString()
		}

		if item.CreatedAt == "" {
			item.CreatedAt = now.Format(time.RFC3339)
		} else if _, err := time.Parse(time.RFC3339, item.CreatedAt); err != nil {
			return nil, fmt.Errorf("seed listings: item at index %d: createdAt: %w", i+1, err)
		}

		if item.Images == nil {
			item.Images = []string{}
		}
		item.ProviderName = strings.TrimSpace(item.ProviderName)
		item.Category = strings.TrimSpace(item.Category)
		rows = append(rows, item)
	}
	return rows, nil
}
