//go:build integration

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
	catalogpg "sentinelles/internal/catalog/store/postgres"
	"sentinelles/internal/platform/postgres"
	"sentinelles/internal/seed"
	"sentinelles/pkg/sentinel"
	"sentinelles/pkg/testutil/containers"
)

// PostgresStoreSuite runs the read surface against a real Postgres populated
// with the reference seed. All tests are read-only, so the container is
// migrated and seeded once for the whole suite.
type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *catalogpg.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	ctx := context.Background()
	s.postgres = containers.NewPostgresContainer(s.T())

	s.Require().NoError(postgres.Migrate(ctx, s.postgres.DB))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Require().NoError(seed.Run(ctx, s.postgres.DB, logger, nil))

	s.store = catalogpg.New(s.postgres.DB)
}

func (s *PostgresStoreSuite) TestListWhistleblowersOrdering() {
	rows, err := s.store.ListWhistleblowers(context.Background(), store.ListFilter{Limit: store.MaxLimit})
	s.Require().NoError(err)
	s.Require().Len(rows, 9)

	// Newest revelation first; same-year rows keep insertion order.
	s.Equal("frances-haugen", rows[0].Slug)
	s.Equal("christopher-wylie", rows[1].Slug)
	for i := 1; i < len(rows); i++ {
		s.LessOrEqual(derefYear(rows[i].RevelationYear), derefYear(rows[i-1].RevelationYear))
	}
}

func derefYear(y *int) int {
	if y == nil {
		return 0
	}
	return *y
}

func (s *PostgresStoreSuite) TestPaginationPartitionsTheList() {
	ctx := context.Background()
	full, err := s.store.ListWhistleblowers(ctx, store.ListFilter{Limit: store.MaxLimit})
	s.Require().NoError(err)

	seen := map[int64]bool{}
	var pages int
	for offset := 0; offset < len(full); offset += 4 {
		page, err := s.store.ListWhistleblowers(ctx, store.ListFilter{Limit: 4, Offset: offset})
		s.Require().NoError(err)
		pages++
		for _, w := range page {
			s.False(seen[w.ID], "row %d appeared on two pages", w.ID)
			seen[w.ID] = true
		}
	}
	s.Equal(3, pages)
	s.Len(seen, len(full))
}

func (s *PostgresStoreSuite) TestWhistleblowerDomainFilterUsesTags() {
	rows, err := s.store.ListWhistleblowers(context.Background(), store.ListFilter{
		Domain: "fiscalité",
		Limit:  store.MaxLimit,
	})
	s.Require().NoError(err)

	slugs := make([]string, len(rows))
	for i, w := range rows {
		slugs[i] = w.Slug
	}
	s.ElementsMatch([]string{"antoine-deltour", "herve-falciani", "stephanie-gibaud"}, slugs)
}

func (s *PostgresStoreSuite) TestCaseDomainFilterIsDirectEquality() {
	rows, err := s.store.ListCases(context.Background(), store.ListFilter{
		Domain: "surveillance",
		Limit:  store.MaxLimit,
	})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("projet-pegasus", rows[0].Slug)
	s.Equal("nsa-prism", rows[1].Slug)
}

func (s *PostgresStoreSuite) TestCaseStatusFilter() {
	rows, err := s.store.ListCases(context.Background(), store.ListFilter{
		Status: "en cours",
		Limit:  store.MaxLimit,
	})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("projet-pegasus", rows[0].Slug)
}

func (s *PostgresStoreSuite) TestIDAndSlugLookupsAgree() {
	ctx := context.Background()
	bySlug, err := s.store.GetWhistleblowerBySlug(ctx, "edward-snowden")
	s.Require().NoError(err)

	byID, err := s.store.GetWhistleblowerByID(ctx, bySlug.ID)
	s.Require().NoError(err)
	s.Equal(bySlug, byID)
}

func (s *PostgresStoreSuite) TestUnverifiedRowsAreInvisible() {
	ctx := context.Background()
	var id int64
	err := s.postgres.DB.QueryRowContext(ctx, `INSERT INTO whistleblowers
		(slug, name, summary, status, is_featured, is_verified)
		VALUES ('brouillon', 'Brouillon', 'fiche en attente de validation', 'inconnu', TRUE, FALSE)
		RETURNING id`).Scan(&id)
	s.Require().NoError(err)
	defer func() {
		_, err := s.postgres.DB.ExecContext(ctx, `DELETE FROM whistleblowers WHERE id = $1`, id)
		s.Require().NoError(err)
	}()

	rows, err := s.store.ListWhistleblowers(ctx, store.ListFilter{Limit: store.MaxLimit})
	s.Require().NoError(err)
	for _, w := range rows {
		s.NotEqual(id, w.ID)
	}

	_, err = s.store.GetWhistleblowerByID(ctx, id)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.GetWhistleblowerBySlug(ctx, "brouillon")
	s.ErrorIs(err, sentinel.ErrNotFound)

	hits, err := s.store.SearchWhistleblowers(ctx, "brouillon", 10)
	s.Require().NoError(err)
	s.Empty(hits)

	// Totals ignore the draft as well.
	total, err := s.store.CountWhistleblowers(ctx, false)
	s.Require().NoError(err)
	s.Equal(9, total)
}

func (s *PostgresStoreSuite) TestBidirectionalCaseLinks() {
	ctx := context.Background()
	snowden, err := s.store.GetWhistleblowerBySlug(ctx, "edward-snowden")
	s.Require().NoError(err)
	prism, err := s.store.GetCaseBySlug(ctx, "nsa-prism")
	s.Require().NoError(err)

	caseRefs, err := s.store.ListCaseRefsForWhistleblower(ctx, snowden.ID)
	s.Require().NoError(err)
	s.Require().Len(caseRefs, 1)
	s.Equal(prism.ID, caseRefs[0].ID)
	s.Equal("nsa-prism", caseRefs[0].Slug)

	wbRefs, err := s.store.ListWhistleblowerRefsForCase(ctx, prism.ID)
	s.Require().NoError(err)
	s.Require().Len(wbRefs, 1)
	s.Equal(snowden.ID, wbRefs[0].ID)
	s.Equal(models.StatusExile, wbRefs[0].Status)
}

func (s *PostgresStoreSuite) TestEntityCaseCountsAndRefs() {
	ctx := context.Background()
	entities, err := s.store.ListEntities(ctx, "")
	s.Require().NoError(err)
	s.Require().Len(entities, 9)

	counts := map[string]int{}
	for _, e := range entities {
		counts[e.Slug] = e.CasesCount
	}
	s.Equal(1, counts["nsa"])
	s.Equal(1, counts["nso-group"])
	s.Equal(1, counts["palantir"])
	s.Equal(0, counts["hsbc"])

	nsa, err := s.store.GetEntityBySlug(ctx, "nsa")
	s.Require().NoError(err)
	refs, err := s.store.ListCaseRefsForEntity(ctx, nsa.ID)
	s.Require().NoError(err)
	s.Require().Len(refs, 1)
	s.Equal("nsa-prism", refs[0].Slug)
}

func (s *PostgresStoreSuite) TestEntitySearchFilter() {
	entities, err := s.store.ListEntities(context.Background(), "hsbc")
	s.Require().NoError(err)
	s.Require().Len(entities, 1)
	s.Equal("hsbc", entities[0].Slug)
}

func (s *PostgresStoreSuite) TestSearchAcrossKinds() {
	ctx := context.Background()

	wb, err := s.store.SearchWhistleblowers(ctx, "nsa", 10)
	s.Require().NoError(err)
	s.Require().Len(wb, 1)
	s.Equal("edward-snowden", wb[0].Slug)

	cases, err := s.store.SearchCases(ctx, "nsa", 10)
	s.Require().NoError(err)
	s.Require().Len(cases, 1)
	s.Equal("nsa-prism", cases[0].Slug)

	entities, err := s.store.SearchEntities(ctx, "nsa", 5)
	s.Require().NoError(err)
	s.Require().Len(entities, 1)
	s.Equal("nsa", entities[0].Slug)
}

func (s *PostgresStoreSuite) TestSearchTermMatchesLiterally() {
	hits, err := s.store.SearchWhistleblowers(context.Background(), "100%", 10)
	s.Require().NoError(err)
	s.Empty(hits)

	// A bare wildcard must not match everything.
	hits, err = s.store.SearchWhistleblowers(context.Background(), "%", 10)
	s.Require().NoError(err)
	s.Empty(hits)
}

func (s *PostgresStoreSuite) TestStatsCounts() {
	ctx := context.Background()

	total, err := s.store.CountCases(ctx, false)
	s.Require().NoError(err)
	s.Equal(4, total)

	byStatus, err := s.store.CountWhistleblowersByStatus(ctx)
	s.Require().NoError(err)
	s.Equal(6, byStatus["libre"])
	s.Equal(1, byStatus["exilé"])
	s.Equal(1, byStatus["réhabilité"])
	s.Equal(1, byStatus["en procès"])

	byDomain, err := s.store.CountCasesByDomain(ctx)
	s.Require().NoError(err)
	s.Equal(map[string]int{"surveillance": 2, "technologie": 1, "fiscalité": 1}, byDomain)

	tagDomains, err := s.store.CountWhistleblowerTagDomains(ctx)
	s.Require().NoError(err)
	s.Equal(3, tagDomains["fiscalité"])
	s.Equal(3, tagDomains["défense"])
	s.Equal(2, tagDomains["technologie"])
	s.Equal(1, tagDomains["surveillance"])
}

func (s *PostgresStoreSuite) TestTimelineOrderedByYear() {
	ctx := context.Background()
	prism, err := s.store.GetCaseBySlug(ctx, "nsa-prism")
	s.Require().NoError(err)

	events, err := s.store.ListTimeline(ctx, prism.ID)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	for i := 1; i < len(events); i++ {
		s.LessOrEqual(events[i-1].EventYear, events[i].EventYear)
	}
}

func (s *PostgresStoreSuite) TestResourcesForWhistleblower() {
	ctx := context.Background()
	snowden, err := s.store.GetWhistleblowerBySlug(ctx, "edward-snowden")
	s.Require().NoError(err)

	resources, err := s.store.ListResources(ctx, models.Owner{Kind: models.OwnerWhistleblower, ID: snowden.ID})
	s.Require().NoError(err)
	s.Require().Len(resources, 2)
	s.Equal("Mémoires vives", resources[0].Title)
	s.True(resources[0].IsPrimary)
	s.Equal(models.ResourceDocumentaire, resources[1].ResourceType)
}
