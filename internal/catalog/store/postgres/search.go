package postgres

import (
	"context"
	"fmt"

	"sentinelles/internal/catalog/models"
)

// Global search queries. Each entity kind searches its own fixed allow-list of
// text columns; whistleblowers and cases are gated on verification, entities
// have no gate to apply.

func (s *Store) SearchWhistleblowers(ctx context.Context, term string, limit int) ([]models.SearchHit, error) {
	query := `SELECT id, slug, name FROM whistleblowers
		WHERE is_verified = TRUE AND (name ILIKE $1 OR main_revelation ILIKE $1)
		ORDER BY id LIMIT $2`
	hits, err := s.searchHits(ctx, query, likePattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search whistleblowers: %w", err)
	}
	return hits, nil
}

func (s *Store) SearchCases(ctx context.Context, term string, limit int) ([]models.SearchHit, error) {
	query := `SELECT id, slug, name FROM cases
		WHERE is_verified = TRUE AND (name ILIKE $1 OR summary ILIKE $1)
		ORDER BY id LIMIT $2`
	hits, err := s.searchHits(ctx, query, likePattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search cases: %w", err)
	}
	return hits, nil
}

func (s *Store) SearchEntities(ctx context.Context, term string, limit int) ([]models.SearchHit, error) {
	query := `SELECT id, slug, name FROM entities
		WHERE name ILIKE $1
		ORDER BY id LIMIT $2`
	hits, err := s.searchHits(ctx, query, likePattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search entities: %w", err)
	}
	return hits, nil
}
