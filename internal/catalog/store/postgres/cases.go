package postgres

import (
	"context"
	"fmt"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
)

const caseColumns = `c.id, c.slug, c.name, c.short_name, c.image_url, c.domain,
	c.revelation_date, c.revelation_year, c.period_start, c.period_end, c.summary,
	c.context, c.revelations, c.scope, c.countries_involved, c.revealed_by,
	c.revealer_type, c.key_journalists, c.key_organizations, c.legal_consequences,
	c.legislative_changes, c.public_impact, c.status, c.status_details,
	c.is_featured, c.is_verified, c.created_at, c.updated_at`

func scanCase(row rowScanner) (*models.Case, error) {
	var c models.Case
	err := row.Scan(
		&c.ID, &c.Slug, &c.Name, &c.ShortName, &c.ImageURL, &c.Domain,
		&c.RevelationDate, &c.RevelationYear, &c.PeriodStart, &c.PeriodEnd, &c.Summary,
		&c.Context, &c.Revelations, &c.Scope, &c.CountriesInvolved, &c.RevealedBy,
		&c.RevealerType, &c.KeyJournalists, &c.KeyOrganizations, &c.LegalConsequences,
		&c.LegislativeChanges, &c.PublicImpact, &c.Status, &c.StatusDetails,
		&c.IsFeatured, &c.IsVerified, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCases(ctx context.Context, f store.ListFilter) ([]models.Case, error) {
	query, args := caseListQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	out := []models.Case{}
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *Store) GetCaseByID(ctx context.Context, id int64) (*models.Case, error) {
	return s.getCase(ctx, "c.id = $1", id)
}

func (s *Store) GetCaseBySlug(ctx context.Context, slug string) (*models.Case, error) {
	return s.getCase(ctx, "c.slug = $1", slug)
}

func (s *Store) getCase(ctx context.Context, cond string, arg any) (*models.Case, error) {
	query := "SELECT " + caseColumns + " FROM cases c WHERE " + cond + " AND c.is_verified = TRUE"
	c, err := scanCase(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return nil, notFound(err, "get case")
	}
	return c, nil
}
