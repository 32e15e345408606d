package postgres

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinelles/internal/catalog/store"
)

func TestListQueryComposesPredicates(t *testing.T) {
	q := &listQuery{}
	q.where("is_verified = TRUE")
	q.where("status = %s", "libre")
	q.where("(name ILIKE %s OR summary ILIKE %s)", "%a%", "%a%")

	assert.Equal(t, " WHERE is_verified = TRUE AND status = $1 AND (name ILIKE $2 OR summary ILIKE $3)", q.clause())
	assert.Equal(t, []any{"libre", "%a%", "%a%"}, q.args)
}

func TestListQueryEmptyClause(t *testing.T) {
	q := &listQuery{}
	assert.Equal(t, "", q.clause())
}

func TestListQueryPageNumbersAfterPredicates(t *testing.T) {
	q := &listQuery{}
	q.where("status = %s", "libre")

	tail := q.page(20, 40)
	assert.Equal(t, " LIMIT $2 OFFSET $3", tail)
	assert.Equal(t, []any{"libre", 20, 40}, q.args)
}

func TestListQueryPageDefaultsLimit(t *testing.T) {
	q := &listQuery{}
	tail := q.page(0, 0)
	assert.Equal(t, " LIMIT $1 OFFSET $2", tail)
	assert.Equal(t, []any{store.DefaultLimit, 0}, q.args)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\temp`, escapeLike(`c:\temp`))
	assert.Equal(t, "snowden", escapeLike("snowden"))

	assert.Equal(t, `%100\%%`, likePattern("100%"))
}

func TestWhistleblowerListQuery(t *testing.T) {
	sql, args := whistleblowerListQuery(store.ListFilter{
		Domain:       "surveillance",
		Status:       "exilé",
		Search:       "snow_den",
		FeaturedOnly: true,
		Limit:        10,
		Offset:       20,
	})

	// Verification gate always present, domain goes through the tag
	// association, search term escaped, pagination last.
	assert.Contains(t, sql, "w.is_verified = TRUE")
	assert.Contains(t, sql, "w.is_featured = TRUE")
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM domain_tags dt WHERE dt.whistleblower_id = w.id AND dt.domain = $4)")
	assert.Contains(t, sql, "ORDER BY w.is_featured DESC, w.revelation_year DESC NULLS LAST, w.id")
	assert.True(t, strings.HasSuffix(sql, " LIMIT $5 OFFSET $6"), sql)
	assert.Equal(t, []any{"exilé", `%snow\_den%`, `%snow\_den%`, "surveillance", 10, 20}, args)
}

func TestWhistleblowerListQueryUnfiltered(t *testing.T) {
	sql, args := whistleblowerListQuery(store.ListFilter{Limit: store.DefaultLimit})

	assert.NotContains(t, sql, "is_featured = TRUE")
	assert.NotContains(t, sql, "domain_tags")
	assert.True(t, strings.HasSuffix(sql, " LIMIT $1 OFFSET $2"), sql)
	assert.Equal(t, []any{store.DefaultLimit, 0}, args)
}

func TestCaseListQueryUsesDirectDomainEquality(t *testing.T) {
	sql, args := caseListQuery(store.ListFilter{Domain: "fiscalité", Limit: 50})

	assert.Contains(t, sql, "c.domain = $1")
	assert.NotContains(t, sql, "domain_tags")
	assert.Contains(t, sql, "ORDER BY c.is_featured DESC, c.revelation_year DESC, c.id")
	assert.Equal(t, []any{"fiscalité", 50, 0}, args)
}

func TestCaseListQueryPlaceholderNumberingIsDense(t *testing.T) {
	sql, _ := caseListQuery(store.ListFilter{
		Domain:       "finance",
		Status:       "impuni",
		Search:       "hsbc",
		FeaturedOnly: true,
		Limit:        25,
		Offset:       50,
	})

	// Every placeholder from $1 up to the pagination pair must appear
	// exactly once, whatever combination of filters is active.
	for i := 1; i <= 6; i++ {
		ph := fmt.Sprintf("$%d", i)
		require.Equal(t, 1, strings.Count(sql, ph), "placeholder %s in %s", ph, sql)
	}
	assert.NotContains(t, sql, "$7")
}
