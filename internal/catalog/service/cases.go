package service

import (
	"context"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
)

// ListCases returns the filtered case list view with tag domains attached and
// summaries truncated.
func (s *Service) ListCases(ctx context.Context, f store.ListFilter) ([]models.CaseListItem, error) {
	rows, err := s.store.ListCases(ctx, f)
	if err != nil {
		return nil, internalErr("list cases", err)
	}

	out := []models.CaseListItem{}
	for _, c := range rows {
		domains, err := s.domainsFor(ctx, models.OwnerCase, c.ID)
		if err != nil {
			return nil, internalErr("list case domains", err)
		}
		out = append(out, models.CaseListItem{
			ID:             c.ID,
			Slug:           c.Slug,
			Name:           c.Name,
			ShortName:      c.ShortName,
			ImageURL:       c.ImageURL,
			Domain:         c.Domain,
			RevelationYear: c.RevelationYear,
			Summary:        truncateSummary(c.Summary),
			RevealerType:   c.RevealerType,
			Status:         c.Status,
			Domains:        domains,
			IsFeatured:     c.IsFeatured,
		})
	}
	return out, nil
}

// GetCase resolves an id-or-slug identifier to the full case aggregate with
// resources, linked people, implicated organizations and the timeline.
func (s *Service) GetCase(ctx context.Context, identifier string) (*models.CaseDetail, error) {
	var (
		c   *models.Case
		err error
	)
	if id, ok := parseID(identifier); ok {
		c, err = s.store.GetCaseByID(ctx, id)
	} else {
		c, err = s.store.GetCaseBySlug(ctx, identifier)
	}
	if err != nil {
		return nil, s.missOrInternal(err, "get case", "case", msgCaseNotFound)
	}

	domains, err := s.domainsFor(ctx, models.OwnerCase, c.ID)
	if err != nil {
		return nil, internalErr("list case domains", err)
	}
	resources, err := s.store.ListResources(ctx, models.Owner{Kind: models.OwnerCase, ID: c.ID})
	if err != nil {
		return nil, internalErr("list case resources", err)
	}
	whistleblowers, err := s.store.ListWhistleblowerRefsForCase(ctx, c.ID)
	if err != nil {
		return nil, internalErr("list case whistleblowers", err)
	}
	entities, err := s.store.ListEntityRefsForCase(ctx, c.ID)
	if err != nil {
		return nil, internalErr("list case entities", err)
	}
	timeline, err := s.store.ListTimeline(ctx, c.ID)
	if err != nil {
		return nil, internalErr("list case timeline", err)
	}

	var revelationDate *string
	if c.RevelationDate != nil {
		d := c.RevelationDate.Format("2006-01-02")
		revelationDate = &d
	}

	return &models.CaseDetail{
		ID:                 c.ID,
		Slug:               c.Slug,
		Name:               c.Name,
		ShortName:          c.ShortName,
		ImageURL:           c.ImageURL,
		Domain:             c.Domain,
		RevelationDate:     revelationDate,
		RevelationYear:     c.RevelationYear,
		PeriodStart:        c.PeriodStart,
		PeriodEnd:          c.PeriodEnd,
		Summary:            c.Summary,
		Context:            c.Context,
		Revelations:        c.Revelations,
		Scope:              c.Scope,
		CountriesInvolved:  c.CountriesInvolved,
		RevealedBy:         c.RevealedBy,
		RevealerType:       c.RevealerType,
		KeyJournalists:     c.KeyJournalists,
		KeyOrganizations:   c.KeyOrganizations,
		LegalConsequences:  c.LegalConsequences,
		LegislativeChanges: c.LegislativeChanges,
		PublicImpact:       c.PublicImpact,
		Status:             c.Status,
		StatusDetails:      c.StatusDetails,
		Domains:            domains,
		Resources:          resources,
		Whistleblowers:     whistleblowers,
		Entities:           entities,
		Timeline:           timeline,
		IsFeatured:         c.IsFeatured,
		IsVerified:         c.IsVerified,
	}, nil
}
