package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sentinelles/internal/catalog/models"
)

// Per-kind caps for the global search endpoint.
const (
	searchLimitWhistleblowers = 10
	searchLimitCases          = 10
	searchLimitEntities       = 5
)

// Search runs the three per-kind searches concurrently with shared
// cancellation and returns three separately tagged lists; any unified ranking
// is the caller's business.
func (s *Service) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	result := &models.SearchResult{
		Query:          query,
		Whistleblowers: []models.SearchHit{},
		Cases:          []models.SearchHit{},
		Entities:       []models.SearchHit{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hits, err := s.store.SearchWhistleblowers(ctx, query, searchLimitWhistleblowers)
		if err != nil {
			return err
		}
		result.Whistleblowers = tagHits(hits, "whistleblower")
		return nil
	})
	g.Go(func() error {
		hits, err := s.store.SearchCases(ctx, query, searchLimitCases)
		if err != nil {
			return err
		}
		result.Cases = tagHits(hits, "case")
		return nil
	})
	g.Go(func() error {
		hits, err := s.store.SearchEntities(ctx, query, searchLimitEntities)
		if err != nil {
			return err
		}
		result.Entities = tagHits(hits, "entity")
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, internalErr("global search", err)
	}
	return result, nil
}

func tagHits(hits []models.SearchHit, kind string) []models.SearchHit {
	tagged := make([]models.SearchHit, len(hits))
	for i, h := range hits {
		h.Type = kind
		tagged[i] = h
	}
	return tagged
}
