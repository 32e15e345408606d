package postgres

import (
	"context"
	"fmt"
	"time"

	"sentinelles/internal/catalog/models"
)

// ownerColumn maps an owner kind onto its foreign key column in the resources
// and domain_tags tables.
func ownerColumn(kind models.OwnerKind) string {
	if kind == models.OwnerCase {
		return "case_id"
	}
	return "whistleblower_id"
}

// ListDomains returns the domain tag labels owned by one record, in store
// return order.
func (s *Store) ListDomains(ctx context.Context, owner models.Owner) ([]string, error) {
	query := "SELECT domain FROM domain_tags WHERE " + ownerColumn(owner.Kind) + " = $1"
	rows, err := s.db.QueryContext(ctx, query, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan domain tag: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListResources returns the full resource objects owned by one record.
func (s *Store) ListResources(ctx context.Context, owner models.Owner) ([]models.Resource, error) {
	col := ownerColumn(owner.Kind)
	query := `SELECT id, resource_type, title, url, author, publisher, year,
		description, is_primary, is_free, language
		FROM resources WHERE ` + col + ` = $1 ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	out := []models.Resource{}
	for rows.Next() {
		r := models.Resource{Owner: owner}
		err := rows.Scan(&r.ID, &r.ResourceType, &r.Title, &r.URL, &r.Author,
			&r.Publisher, &r.Year, &r.Description, &r.IsPrimary, &r.IsFree, &r.Language)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListCaseRefsForWhistleblower projects the person's linked verified cases to
// minimal cross-references.
func (s *Store) ListCaseRefsForWhistleblower(ctx context.Context, whistleblowerID int64) ([]models.CaseRef, error) {
	query := `SELECT c.id, c.slug, c.name, c.revelation_year
		FROM cases c JOIN whistleblower_cases wc ON wc.case_id = c.id
		WHERE wc.whistleblower_id = $1 AND c.is_verified = TRUE
		ORDER BY c.revelation_year DESC, c.id`
	return s.caseRefs(ctx, query, whistleblowerID)
}

// ListCaseRefsForEntity projects the organization's verified cases to minimal
// cross-references.
func (s *Store) ListCaseRefsForEntity(ctx context.Context, entityID int64) ([]models.CaseRef, error) {
	query := `SELECT c.id, c.slug, c.name, c.revelation_year
		FROM cases c JOIN case_entities ce ON ce.case_id = c.id
		WHERE ce.entity_id = $1 AND c.is_verified = TRUE
		ORDER BY c.revelation_year DESC, c.id`
	return s.caseRefs(ctx, query, entityID)
}

func (s *Store) caseRefs(ctx context.Context, query string, arg any) ([]models.CaseRef, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list case refs: %w", err)
	}
	defer rows.Close()

	out := []models.CaseRef{}
	for rows.Next() {
		var ref models.CaseRef
		if err := rows.Scan(&ref.ID, &ref.Slug, &ref.Name, &ref.RevelationYear); err != nil {
			return nil, fmt.Errorf("scan case ref: %w", err)
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// ListWhistleblowerRefsForCase projects the case's linked verified people to
// minimal cross-references.
func (s *Store) ListWhistleblowerRefsForCase(ctx context.Context, caseID int64) ([]models.WhistleblowerRef, error) {
	query := `SELECT w.id, w.slug, w.name, w.photo_url, w.status
		FROM whistleblowers w JOIN whistleblower_cases wc ON wc.whistleblower_id = w.id
		WHERE wc.case_id = $1 AND w.is_verified = TRUE
		ORDER BY w.name`
	rows, err := s.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("list whistleblower refs: %w", err)
	}
	defer rows.Close()

	out := []models.WhistleblowerRef{}
	for rows.Next() {
		var ref models.WhistleblowerRef
		if err := rows.Scan(&ref.ID, &ref.Slug, &ref.Name, &ref.PhotoURL, &ref.Status); err != nil {
			return nil, fmt.Errorf("scan whistleblower ref: %w", err)
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// ListEntityRefsForCase projects the case's implicated organizations to
// minimal cross-references.
func (s *Store) ListEntityRefsForCase(ctx context.Context, caseID int64) ([]models.EntityRef, error) {
	query := `SELECT e.id, e.slug, e.name, e.entity_type, e.country, e.logo_url
		FROM entities e JOIN case_entities ce ON ce.entity_id = e.id
		WHERE ce.case_id = $1
		ORDER BY e.name`
	rows, err := s.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("list entity refs: %w", err)
	}
	defer rows.Close()

	out := []models.EntityRef{}
	for rows.Next() {
		var ref models.EntityRef
		if err := rows.Scan(&ref.ID, &ref.Slug, &ref.Name, &ref.EntityType, &ref.Country, &ref.LogoURL); err != nil {
			return nil, fmt.Errorf("scan entity ref: %w", err)
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// ListTimeline returns the case's milestones ordered by year, then exact date
// when present.
func (s *Store) ListTimeline(ctx context.Context, caseID int64) ([]models.TimelineEvent, error) {
	query := `SELECT id, case_id, event_date, event_year, title, description, source_url
		FROM timeline_events WHERE case_id = $1
		ORDER BY event_year, event_date NULLS LAST, id`
	rows, err := s.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("list timeline: %w", err)
	}
	defer rows.Close()

	out := []models.TimelineEvent{}
	for rows.Next() {
		var ev models.TimelineEvent
		var date *time.Time
		if err := rows.Scan(&ev.ID, &ev.CaseID, &date, &ev.EventYear, &ev.Title, &ev.Description, &ev.SourceURL); err != nil {
			return nil, fmt.Errorf("scan timeline event: %w", err)
		}
		if date != nil {
			d := date.Format("2006-01-02")
			ev.EventDate = &d
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
