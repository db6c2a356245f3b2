package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/marktfox/backend/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteStore implements domain.CatalogRepository on a SQLite database.
// FetchEligibleOffers orders by offer ID, which fixes the tie-break order
// the allocation core depends on.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the catalog database at the given path
// and migrates the schema. Use ":memory:" for an in-memory database.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate catalog database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS store_offers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		store_name TEXT NOT NULL,
		product_name TEXT NOT NULL,
		quantity REAL NOT NULL,
		unit TEXT NOT NULL,
		price REAL NOT NULL,
		valid_from TEXT NOT NULL,
		valid_until TEXT NOT NULL,
		image TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_store_offers_product_validity
		ON store_offers(product_name, valid_until);
	`
	_, err := s.db.Exec(schema)
	return err
}

const offerColumns = "id, store_name, product_name, quantity, unit, price, valid_from, valid_until, image"

// FetchEligibleOffers returns offers for the given product names whose
// valid_until is on or after asOf, ordered by offer ID.
func (s *SQLiteStore) FetchEligibleOffers(ctx context.Context, productNames []string, asOf time.Time) ([]domain.Offer, error) {
	if len(productNames) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(productNames))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(`
		SELECT %s FROM store_offers
		WHERE product_name IN (%s) AND valid_until >= ?
		ORDER BY id`, offerColumns, placeholders)

	args := make([]interface{}, 0, len(productNames)+1)
	for _, name := range productNames {
		args = append(args, name)
	}
	args = append(args, asOf.Format(dateLayout))

	return s.queryOffers(ctx, query, args...)
}

// ListOffers returns the whole catalog ordered by offer ID.
func (s *SQLiteStore) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	query := fmt.Sprintf("SELECT %s FROM store_offers ORDER BY id", offerColumns)
	return s.queryOffers(ctx, query)
}

// SearchOffers returns offers whose product name contains the term
// (case-insensitive), optionally filtered by store name.
func (s *SQLiteStore) SearchOffers(ctx context.Context, term, store string) ([]domain.Offer, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM store_offers
		WHERE LOWER(product_name) LIKE ?`, offerColumns)
	args := []interface{}{"%" + strings.ToLower(term) + "%"}

	if store != "" {
		query += " AND LOWER(store_name) = ?"
		args = append(args, strings.ToLower(store))
	}
	query += " ORDER BY id"

	return s.queryOffers(ctx, query, args...)
}

// InsertOffers appends offers to the catalog in one transaction and returns
// the number of rows written.
func (s *SQLiteStore) InsertOffers(ctx context.Context, offers []domain.Offer) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO store_offers (store_name, product_name, quantity, unit, price, valid_from, valid_until, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, offer := range offers {
		var image interface{}
		if offer.Image != "" {
			image = offer.Image
		}
		_, err := stmt.ExecContext(ctx,
			offer.StoreName,
			offer.ProductName,
			offer.Quantity,
			offer.Unit,
			offer.Price,
			offer.ValidFrom.Format(dateLayout),
			offer.ValidUntil.Format(dateLayout),
			image,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert offer for %q: %w", offer.ProductName, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// DeleteAllOffers removes every offer from the catalog.
func (s *SQLiteStore) DeleteAllOffers(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM store_offers")
	return err
}

func (s *SQLiteStore) queryOffers(ctx context.Context, query string, args ...interface{}) ([]domain.Offer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var (
			offer      domain.Offer
			validFrom  string
			validUntil string
			image      sql.NullString
		)
		err := rows.Scan(
			&offer.ID,
			&offer.StoreName,
			&offer.ProductName,
			&offer.Quantity,
			&offer.Unit,
			&offer.Price,
			&validFrom,
			&validUntil,
			&image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}

		if offer.ValidFrom, err = time.Parse(dateLayout, validFrom); err != nil {
			return nil, fmt.Errorf("invalid valid_from date %q: %w", validFrom, err)
		}
		if offer.ValidUntil, err = time.Parse(dateLayout, validUntil); err != nil {
			return nil, fmt.Errorf("invalid valid_until date %q: %w", validUntil, err)
		}
		offer.Image = image.String

		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
