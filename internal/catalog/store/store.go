// Package store defines the persistence boundary of the catalog. Stores are
// interface-driven to keep the service layer testable and to allow swapping
// the Postgres implementation without rewiring business code.
package store

import (
	"context"

	"sentinelles/internal/catalog/models"
)

// Default and maximum page sizes for list queries. The boundary enforces the
// cap; the store applies whatever limit it is handed.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ListFilter carries the optional predicates of a list query. Zero values
// impose no restriction; every query is additionally gated on is_verified.
type ListFilter struct {
	Domain       string
	Status       string
	Search       string
	FeaturedOnly bool
	Limit        int
	Offset       int
}

// Store is the read surface of the catalog. There is no public write path;
// the seeder populates reference data directly against the pool. All list
// methods return rows in featured-first, newest-revelation-first order.
type Store interface {
	// Whistleblowers. Reads are gated on is_verified.
	ListWhistleblowers(ctx context.Context, f ListFilter) ([]models.Whistleblower, error)
	GetWhistleblowerByID(ctx context.Context, id int64) (*models.Whistleblower, error)
	GetWhistleblowerBySlug(ctx context.Context, slug string) (*models.Whistleblower, error)

	// Cases. Reads are gated on is_verified.
	ListCases(ctx context.Context, f ListFilter) ([]models.Case, error)
	GetCaseByID(ctx context.Context, id int64) (*models.Case, error)
	GetCaseBySlug(ctx context.Context, slug string) (*models.Case, error)

	// Entities carry no verification gate of their own, but their case
	// counts and cross-references only cover verified cases.
	ListEntities(ctx context.Context, search string) ([]models.EntityListItem, error)
	GetEntityByID(ctx context.Context, id int64) (*models.Entity, error)
	GetEntityBySlug(ctx context.Context, slug string) (*models.Entity, error)

	// Related rows for projection.
	ListDomains(ctx context.Context, owner models.Owner) ([]string, error)
	ListResources(ctx context.Context, owner models.Owner) ([]models.Resource, error)
	ListCaseRefsForWhistleblower(ctx context.Context, whistleblowerID int64) ([]models.CaseRef, error)
	ListWhistleblowerRefsForCase(ctx context.Context, caseID int64) ([]models.WhistleblowerRef, error)
	ListEntityRefsForCase(ctx context.Context, caseID int64) ([]models.EntityRef, error)
	ListCaseRefsForEntity(ctx context.Context, entityID int64) ([]models.CaseRef, error)
	ListTimeline(ctx context.Context, caseID int64) ([]models.TimelineEvent, error)

	// Search. Hits come back in store order; the service tags their kind.
	SearchWhistleblowers(ctx context.Context, term string, limit int) ([]models.SearchHit, error)
	SearchCases(ctx context.Context, term string, limit int) ([]models.SearchHit, error)
	SearchEntities(ctx context.Context, term string, limit int) ([]models.SearchHit, error)

	// Stats and facets, over verified rows only.
	CountWhistleblowers(ctx context.Context, featuredOnly bool) (int, error)
	CountCases(ctx context.Context, featuredOnly bool) (int, error)
	CountWhistleblowersByStatus(ctx context.Context) (map[string]int, error)
	CountCasesByDomain(ctx context.Context) (map[string]int, error)
	CountWhistleblowerTagDomains(ctx context.Context) (map[string]int, error)
}
