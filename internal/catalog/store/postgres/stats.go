package postgres

import (
	"context"
	"fmt"
)

func (s *Store) CountWhistleblowers(ctx context.Context, featuredOnly bool) (int, error) {
	return s.countVerified(ctx, "whistleblowers", featuredOnly)
}

func (s *Store) CountCases(ctx context.Context, featuredOnly bool) (int, error) {
	return s.countVerified(ctx, "cases", featuredOnly)
}

func (s *Store) countVerified(ctx context.Context, table string, featuredOnly bool) (int, error) {
	query := "SELECT count(*) FROM " + table + " WHERE is_verified = TRUE"
	if featuredOnly {
		query += " AND is_featured = TRUE"
	}
	var n int
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (s *Store) CountWhistleblowersByStatus(ctx context.Context) (map[string]int, error) {
	out, err := s.countGrouped(ctx, `SELECT status, count(*) FROM whistleblowers
		WHERE is_verified = TRUE GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count whistleblowers by status: %w", err)
	}
	return out, nil
}

func (s *Store) CountCasesByDomain(ctx context.Context) (map[string]int, error) {
	out, err := s.countGrouped(ctx, `SELECT domain, count(*) FROM cases
		WHERE is_verified = TRUE GROUP BY domain`)
	if err != nil {
		return nil, fmt.Errorf("count cases by domain: %w", err)
	}
	return out, nil
}

// CountWhistleblowerTagDomains counts tag rows per domain across verified
// whistleblowers, feeding the whistleblower side of the domain facet table.
func (s *Store) CountWhistleblowerTagDomains(ctx context.Context) (map[string]int, error) {
	out, err := s.countGrouped(ctx, `SELECT dt.domain, count(*)
		FROM domain_tags dt JOIN whistleblowers w ON w.id = dt.whistleblower_id
		WHERE w.is_verified = TRUE GROUP BY dt.domain`)
	if err != nil {
		return nil, fmt.Errorf("count whistleblower tag domains: %w", err)
	}
	return out, nil
}
