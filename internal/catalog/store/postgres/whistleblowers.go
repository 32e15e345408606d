package postgres

import (
	"context"
	"fmt"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
)

const whistleblowerColumns = `w.id, w.slug, w.name, w.photo_url, w.nationality, w.birth_year,
	w.profession, w.main_revelation, w.revelation_year, w.summary, w.context, w.stakes,
	w.impact, w.status, w.refuge_country, w.personal_consequences, w.is_protected,
	w.awards, w.quote, w.quote_source, w.is_featured, w.is_verified, w.created_at, w.updated_at`

func scanWhistleblower(row rowScanner) (*models.Whistleblower, error) {
	var w models.Whistleblower
	err := row.Scan(
		&w.ID, &w.Slug, &w.Name, &w.PhotoURL, &w.Nationality, &w.BirthYear,
		&w.Profession, &w.MainRevelation, &w.RevelationYear, &w.Summary, &w.Context, &w.Stakes,
		&w.Impact, &w.Status, &w.RefugeCountry, &w.PersonalConsequences, &w.IsProtected,
		&w.Awards, &w.Quote, &w.QuoteSource, &w.IsFeatured, &w.IsVerified, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) ListWhistleblowers(ctx context.Context, f store.ListFilter) ([]models.Whistleblower, error) {
	query, args := whistleblowerListQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list whistleblowers: %w", err)
	}
	defer rows.Close()

	out := []models.Whistleblower{}
	for rows.Next() {
		w, err := scanWhistleblower(rows)
		if err != nil {
			return nil, fmt.Errorf("scan whistleblower: %w", err)
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}

func (s *Store) GetWhistleblowerByID(ctx context.Context, id int64) (*models.Whistleblower, error) {
	return s.getWhistleblower(ctx, "w.id = $1", id)
}

func (s *Store) GetWhistleblowerBySlug(ctx context.Context, slug string) (*models.Whistleblower, error) {
	return s.getWhistleblower(ctx, "w.slug = $1", slug)
}

// getWhistleblower keeps the verification gate on both identifier forms: an
// unverified row is indistinguishable from a missing one.
func (s *Store) getWhistleblower(ctx context.Context, cond string, arg any) (*models.Whistleblower, error) {
	query := "SELECT " + whistleblowerColumns + " FROM whistleblowers w WHERE " + cond + " AND w.is_verified = TRUE"
	w, err := scanWhistleblower(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return nil, notFound(err, "get whistleblower")
	}
	return w, nil
}
