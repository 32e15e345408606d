package postgres

import (
	"fmt"
	"strings"

	"sentinelles/internal/catalog/store"
)

// listQuery accumulates AND-combined predicates with positional arguments.
// It exists so every list endpoint composes its filters the same way instead
// of hand-numbering placeholders per query.
type listQuery struct {
	conds []string
	args  []any
}

// where appends one predicate. The condition string uses %s verbs where
// placeholders belong; they are rewritten to the next positional arguments.
func (q *listQuery) where(cond string, args ...any) {
	placeholders := make([]any, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", len(q.args)+i+1)
	}
	q.conds = append(q.conds, fmt.Sprintf(cond, placeholders...))
	q.args = append(q.args, args...)
}

// clause renders the WHERE clause, or "" when no predicate was added.
func (q *listQuery) clause() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// page appends ordered OFFSET/LIMIT arguments and returns the SQL tail.
// Ordering must already be fixed by the caller; pagination is only meaningful
// after it.
func (q *listQuery) page(limit, offset int) string {
	if limit <= 0 {
		limit = store.DefaultLimit
	}
	q.args = append(q.args, limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(q.args)-1, len(q.args))
}

// escapeLike neutralizes LIKE metacharacters in a user-supplied search term so
// the term always matches literally.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// likePattern wraps a search term for case-insensitive substring containment.
func likePattern(term string) string {
	return "%" + escapeLike(term) + "%"
}

// whistleblowerListQuery translates a filter into the whistleblower list
// query. The domain predicate goes through the tag association: a person
// matches if ANY of their tags equals the requested domain.
func whistleblowerListQuery(f store.ListFilter) (string, []any) {
	q := &listQuery{}
	q.where("w.is_verified = TRUE")
	if f.FeaturedOnly {
		q.where("w.is_featured = TRUE")
	}
	if f.Status != "" {
		q.where("w.status = %s", f.Status)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		q.where("(w.name ILIKE %s OR w.main_revelation ILIKE %s)", p, p)
	}
	if f.Domain != "" {
		q.where("EXISTS (SELECT 1 FROM domain_tags dt WHERE dt.whistleblower_id = w.id AND dt.domain = %s)", f.Domain)
	}

	sql := "SELECT " + whistleblowerColumns + " FROM whistleblowers w" +
		q.clause() +
		" ORDER BY w.is_featured DESC, w.revelation_year DESC NULLS LAST, w.id" +
		q.page(f.Limit, f.Offset)
	return sql, q.args
}

// caseListQuery translates a filter into the case list query. Unlike
// whistleblowers, the domain predicate is a direct equality on the case's
// single primary domain.
func caseListQuery(f store.ListFilter) (string, []any) {
	q := &listQuery{}
	q.where("c.is_verified = TRUE")
	if f.FeaturedOnly {
		q.where("c.is_featured = TRUE")
	}
	if f.Domain != "" {
		q.where("c.domain = %s", f.Domain)
	}
	if f.Status != "" {
		q.where("c.status = %s", f.Status)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		q.where("(c.name ILIKE %s OR c.summary ILIKE %s)", p, p)
	}

	sql := "SELECT " + caseColumns + " FROM cases c" +
		q.clause() +
		" ORDER BY c.is_featured DESC, c.revelation_year DESC, c.id" +
		q.page(f.Limit, f.Offset)
	return sql, q.args
}
