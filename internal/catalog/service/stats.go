package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"sentinelles/internal/catalog/models"
)

// Stats gathers the dashboard counts concurrently. Every count covers
// verified records only.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalWhistleblowers, err = s.store.CountWhistleblowers(ctx, false)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalCases, err = s.store.CountCases(ctx, false)
		return err
	})
	g.Go(func() (err error) {
		stats.FeaturedWhistleblowers, err = s.store.CountWhistleblowers(ctx, true)
		return err
	})
	g.Go(func() (err error) {
		stats.FeaturedCases, err = s.store.CountCases(ctx, true)
		return err
	})
	g.Go(func() (err error) {
		stats.WhistleblowersByStatus, err = s.store.CountWhistleblowersByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.CasesByDomain, err = s.store.CountCasesByDomain(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, internalErr("compute stats", err)
	}
	return stats, nil
}

// DomainFacets merges whistleblower tag counts and case domain counts into
// one table keyed by domain name. This is a set union over two
// differently-sourced category counts, not a join: a domain present on only
// one side keeps a zero on the other. Output is sorted by domain name so the
// table is stable across requests.
func (s *Service) DomainFacets(ctx context.Context) ([]models.DomainFacet, error) {
	var tagCounts, caseCounts map[string]int
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		tagCounts, err = s.store.CountWhistleblowerTagDomains(ctx)
		return err
	})
	g.Go(func() (err error) {
		caseCounts, err = s.store.CountCasesByDomain(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, internalErr("compute domain facets", err)
	}

	merged := make(map[string]models.DomainFacet)
	for domain, n := range tagCounts {
		merged[domain] = models.DomainFacet{Domain: domain, Whistleblowers: n}
	}
	for domain, n := range caseCounts {
		f := merged[domain]
		f.Domain = domain
		f.Cases = n
		merged[domain] = f
	}

	out := make([]models.DomainFacet, 0, len(merged))
	for _, f := range merged {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out, nil
}
