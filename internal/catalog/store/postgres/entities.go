package postgres

import (
	"context"
	"fmt"

	"sentinelles/internal/catalog/models"
)

const entityColumns = `e.id, e.slug, e.name, e.entity_type, e.country, e.description, e.logo_url`

// ListEntities returns every organization (optionally name-filtered) together
// with its verified case count.
func (s *Store) ListEntities(ctx context.Context, search string) ([]models.EntityListItem, error) {
	q := &listQuery{}
	if search != "" {
		q.where("e.name ILIKE %s", likePattern(search))
	}
	query := `SELECT e.id, e.slug, e.name, e.entity_type, e.country,
		(SELECT count(*) FROM case_entities ce JOIN cases c ON c.id = ce.case_id
		 WHERE ce.entity_id = e.id AND c.is_verified = TRUE) AS cases_count
		FROM entities e` + q.clause() + ` ORDER BY e.name`

	rows, err := s.db.QueryContext(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	defer rows.Close()

	out := []models.EntityListItem{}
	for rows.Next() {
		var e models.EntityListItem
		if err := rows.Scan(&e.ID, &e.Slug, &e.Name, &e.EntityType, &e.Country, &e.CasesCount); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetEntityByID(ctx context.Context, id int64) (*models.Entity, error) {
	return s.getEntity(ctx, "e.id = $1", id)
}

func (s *Store) GetEntityBySlug(ctx context.Context, slug string) (*models.Entity, error) {
	return s.getEntity(ctx, "e.slug = $1", slug)
}

func (s *Store) getEntity(ctx context.Context, cond string, arg any) (*models.Entity, error) {
	query := "SELECT " + entityColumns + " FROM entities e WHERE " + cond
	var e models.Entity
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&e.ID, &e.Slug, &e.Name, &e.EntityType, &e.Country, &e.Description, &e.LogoURL,
	)
	if err != nil {
		return nil, notFound(err, "get entity")
	}
	return &e, nil
}
