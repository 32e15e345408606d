// Package service assembles response aggregates from store rows: list
// truncation, related-row enrichment, id-or-slug detail lookups, global
// search, and the stats/facet summaries.
package service

import (
	"context"
	"errors"
	"strconv"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
	"sentinelles/internal/platform/metrics"
	dErrors "sentinelles/pkg/domainerrors"
	"sentinelles/pkg/sentinel"
)

// summaryLimit is the list-view truncation threshold, counted in characters
// (runes), not bytes.
const (
	summaryLimit    = 300
	summaryEllipsis = "..."
)

// Localized not-found messages, served to API consumers as-is.
const (
	msgWhistleblowerNotFound = "Lanceur d'alerte non trouvé"
	msgCaseNotFound          = "Affaire non trouvée"
	msgEntityNotFound        = "Entité non trouvée"
)

// Service implements the catalog read operations over a store.
type Service struct {
	store   store.Store
	metrics *metrics.Metrics
}

// New creates a catalog service.
func New(st store.Store, m *metrics.Metrics) *Service {
	return &Service{store: st, metrics: m}
}

// truncateSummary shortens a list-view summary to its first 300 characters
// plus an ellipsis marker. Already-short summaries pass through unchanged.
func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= summaryLimit {
		return s
	}
	return string(runes[:summaryLimit]) + summaryEllipsis
}

// parseID routes a detail lookup: an identifier consisting entirely of digits
// is a numeric id, anything else is a slug. Digit runs overflowing int64
// cannot be a real id and fall through to the slug lookup, where they miss.
func parseID(identifier string) (int64, bool) {
	if identifier == "" {
		return 0, false
	}
	for _, r := range identifier {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// internalErr wraps a store failure so the transport maps it to a 5xx while
// logs keep the cause.
func internalErr(op string, err error) error {
	return dErrors.Wrap(dErrors.CodeInternal, op, err)
}

// missOrInternal translates a lookup error: a store miss becomes the
// localized not-found, anything else propagates as an internal failure.
func (s *Service) missOrInternal(err error, op, kind, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		s.metrics.IncrementLookupMiss(kind)
		return dErrors.New(dErrors.CodeNotFound, message)
	}
	return internalErr(op, err)
}

// domainsFor fetches the tag labels owned by one record.
func (s *Service) domainsFor(ctx context.Context, kind models.OwnerKind, id int64) ([]string, error) {
	return s.store.ListDomains(ctx, models.Owner{Kind: kind, ID: id})
}
