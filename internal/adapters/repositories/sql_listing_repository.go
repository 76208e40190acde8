package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/ports"

	"github.com/jmoiron/sqlx"
)

// sqlx implementation of the ListingRepository port. Queries are written
// with '?' placeholders and rebound for the configured driver.
type SQLListingRepository struct {
	DB     *sqlx.DB
	Driver string
}

func NewSQLListingRepository(conn *sql.DB, driver string) *SQLListingRepository {
	if conn == nil {
		return &SQLListingRepository{Driver: driver}
	}
	return &SQLListingRepository{DB: sqlx.NewDb(conn, driver), Driver: driver}
}

type listingRow struct {
	ID           string `db:"id"`
	ProviderName string `db:"provider_name"`
	ServiceName  string `db:"service_name"`
	Category     string `db:"category"`
	Description  string `db:"description"`
	PostalCode   string `db:"postal_code"`
	Price        string `db:"price"`
	Images       string `db:"images"`
}

// Return listings matching filter, newest first.
func (s *SQLListingRepository) ListListings(ctx context.Context, filter ports.ListingFilter) ([]*domain.Listing, error) {
	if s.DB == nil {
		return nil, errors.New("sql listing repository: DB is nil")
	}

	where, args := buildListingFilter(filter)
	query := `
	SELECT
		id,
		provider_name,
		service_name,
		category,
		description,
		postal_code,
		price,
		images
	FROM listings` + where + `
	ORDER BY created_at DESC, id;
	`
	var rows []listingRow
	if err := s.DB.SelectContext(ctx, &rows, s.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list listings: query listings table: %w", err)
	}

	listings := make([]*domain.Listing, 0, len(rows))
	for _, r := range rows {
		l := &domain.Listing{
			ID:           r.ID,
			ProviderName: r.ProviderName,
			ServiceName:  r.ServiceName,
			Category:     r.Category,
			Description:  r.Description,
			PostalCode:   r.PostalCode,
			Price:        r.Price,
		}
		if r.Images != "" {
			if err := json.Unmarshal([]byte(r.Images), &l.Images); err != nil {
				return nil, fmt.Errorf("list listings: decode images id=%s: %w", r.ID, err)
			}
		}
		listings = append(listings, l)
	}

	return listings, nil
}

// buildListingFilter renders filter as a WHERE clause over the columns
// lowercased at seed time. Category matches exactly ignoring case; postal
// code and keyword are substring matches.
func buildListingFilter(filter ports.ListingFilter) (string, []any) {
	var clauses []string
	var args []any

	if c := strings.TrimSpace(filter.Category); c != "" {
		clauses = append(clauses, "category_norm = ?")
		args = append(args, normalizeText(c))
	}

	if pc := strings.TrimSpace(filter.PostalCode); pc != "" {
		clauses = append(clauses, `postal_code LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(pc))
	}

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		clauses = append(clauses, `search_text LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(normalizeText(kw)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "\n\tWHERE " + strings.Join(clauses, " AND "), args
}

// normalizeText folds case with Unicode rules. SQL LOWER() is ASCII-only
// in SQLite, so both stored and queried text go through here.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// searchText is the keyword haystack for a listing. Fields are joined with
// a newline so a keyword cannot match across two of them.
func searchText(l ListingSeed) string {
	return normalizeText(strings.Join([]string{l.ServiceName, l.Description, l.ProviderName}, "\n"))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
