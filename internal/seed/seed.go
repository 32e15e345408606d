// Package seed populates the catalog's reference data. The run is idempotent:
// if any whistleblower row exists the seed aborts without touching anything,
// so it is safe to run on every startup.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"sentinelles/internal/platform/metrics"
	"sentinelles/pkg/slug"
)

// Run seeds the reference data inside one transaction. A constraint violation
// rolls everything back and propagates; there is no partial seed.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger, m *metrics.Metrics) error {
	var populated bool
	if err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM whistleblowers)`).Scan(&populated); err != nil {
		m.IncrementSeedRun("failed")
		return fmt.Errorf("check existing data: %w", err)
	}
	if populated {
		logger.InfoContext(ctx, "seed skipped, data already present")
		m.IncrementSeedRun("skipped")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		m.IncrementSeedRun("failed")
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertAll(ctx, tx); err != nil {
		m.IncrementSeedRun("failed")
		return err
	}
	if err := tx.Commit(); err != nil {
		m.IncrementSeedRun("failed")
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	logger.InfoContext(ctx, "seed completed")
	m.IncrementSeedRun("seeded")
	return nil
}

func insertAll(ctx context.Context, tx *sql.Tx) error {
	entityIDs := map[string]int64{}
	for _, e := range entities {
		var id int64
		err := tx.QueryRowContext(ctx, `INSERT INTO entities (slug, name, entity_type, country)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			e.slug, e.name, e.entityType, e.country).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert entity %q: %w", e.slug, err)
		}
		entityIDs[e.slug] = id
	}

	caseIDs := map[string]int64{}
	for _, c := range cases {
		var id int64
		err := tx.QueryRowContext(ctx, `INSERT INTO cases (slug, name, short_name, domain,
			revelation_year, period_start, period_end, summary, revealed_by, revealer_type,
			status, is_featured, is_verified)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, TRUE) RETURNING id`,
			c.slugOrDerived(), c.name, c.shortName, c.domain, c.revelationYear,
			c.periodStart, c.periodEnd, c.summary, c.revealedBy, c.revealerType, c.status).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert case %q: %w", c.slugOrDerived(), err)
		}
		caseIDs[c.slugOrDerived()] = id

		for _, entitySlug := range c.entitySlugs {
			_, err := tx.ExecContext(ctx, `INSERT INTO case_entities (case_id, entity_id) VALUES ($1, $2)`,
				id, entityIDs[entitySlug])
			if err != nil {
				return fmt.Errorf("link case %q to entity %q: %w", c.slugOrDerived(), entitySlug, err)
			}
		}
		for _, d := range c.tagDomains {
			_, err := tx.ExecContext(ctx, `INSERT INTO domain_tags (case_id, domain) VALUES ($1, $2)`, id, d)
			if err != nil {
				return fmt.Errorf("tag case %q: %w", c.slugOrDerived(), err)
			}
		}
	}

	for _, w := range whistleblowers {
		wSlug := slug.Make(w.name)
		var id int64
		err := tx.QueryRowContext(ctx, `INSERT INTO whistleblowers (slug, name, nationality,
			birth_year, profession, main_revelation, revelation_year, summary, status,
			refuge_country, quote, is_featured, is_verified)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, TRUE) RETURNING id`,
			wSlug, w.name, w.nationality, w.birthYear, w.profession, w.mainRevelation,
			w.revelationYear, w.summary, w.status, w.refugeCountry, w.quote).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert whistleblower %q: %w", wSlug, err)
		}

		for _, caseSlug := range w.caseSlugs {
			_, err := tx.ExecContext(ctx, `INSERT INTO whistleblower_cases (whistleblower_id, case_id)
				VALUES ($1, $2)`, id, caseIDs[caseSlug])
			if err != nil {
				return fmt.Errorf("link whistleblower %q to case %q: %w", wSlug, caseSlug, err)
			}
		}
		for _, d := range w.tagDomains {
			_, err := tx.ExecContext(ctx, `INSERT INTO domain_tags (whistleblower_id, domain) VALUES ($1, $2)`, id, d)
			if err != nil {
				return fmt.Errorf("tag whistleblower %q: %w", wSlug, err)
			}
		}
		for _, res := range w.resources {
			_, err := tx.ExecContext(ctx, `INSERT INTO resources (whistleblower_id, resource_type,
				title, author, year, is_primary) VALUES ($1, $2, $3, $4, $5, $6)`,
				id, res.resourceType, res.title, res.author, res.year, res.isPrimary)
			if err != nil {
				return fmt.Errorf("insert resource %q: %w", res.title, err)
			}
		}
	}

	for _, ev := range timelineEvents {
		_, err := tx.ExecContext(ctx, `INSERT INTO timeline_events (case_id, event_year, title, description)
			VALUES ($1, $2, $3, $4)`, caseIDs[ev.caseSlug], ev.year, ev.title, ev.description)
		if err != nil {
			return fmt.Errorf("insert timeline event %q: %w", ev.title, err)
		}
	}
	return nil
}

func (c seedCase) slugOrDerived() string {
	if c.slug != "" {
		return c.slug
	}
	return slug.Make(c.name)
}
