// Package postgres implements the catalog store against PostgreSQL. Each
// request-scoped call borrows a connection from the injected pool for exactly
// the duration of its queries; no multi-statement transactions wrap the read
// paths.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
	"sentinelles/pkg/sentinel"
)

// Store implements store.Store over database/sql.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// rowScanner abstracts over *sql.Row and *sql.Rows so the scan helpers serve
// both single-row and list queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// New creates a PostgreSQL-backed catalog store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// countGrouped runs a GROUP BY count query and folds it into a map.
func (s *Store) countGrouped(ctx context.Context, query string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}

// searchHits runs a query producing (id, slug, name) rows.
func (s *Store) searchHits(ctx context.Context, query string, args ...any) ([]models.SearchHit, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hits := []models.SearchHit{}
	for rows.Next() {
		var h models.SearchHit
		if err := rows.Scan(&h.ID, &h.Slug, &h.Name); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// notFound maps sql.ErrNoRows onto the sentinel so services never see driver
// errors for a simple miss.
func notFound(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
