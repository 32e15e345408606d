package service

import (
	"context"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
)

// ListWhistleblowers returns the filtered list view: each row enriched with
// its tag domains and its summary truncated for the listing.
func (s *Service) ListWhistleblowers(ctx context.Context, f store.ListFilter) ([]models.WhistleblowerListItem, error) {
	rows, err := s.store.ListWhistleblowers(ctx, f)
	if err != nil {
		return nil, internalErr("list whistleblowers", err)
	}

	out := []models.WhistleblowerListItem{}
	for _, w := range rows {
		domains, err := s.domainsFor(ctx, models.OwnerWhistleblower, w.ID)
		if err != nil {
			return nil, internalErr("list whistleblower domains", err)
		}
		out = append(out, models.WhistleblowerListItem{
			ID:             w.ID,
			Slug:           w.Slug,
			Name:           w.Name,
			PhotoURL:       w.PhotoURL,
			Nationality:    w.Nationality,
			MainRevelation: w.MainRevelation,
			RevelationYear: w.RevelationYear,
			Status:         w.Status,
			Domains:        domains,
			Summary:        truncateSummary(w.Summary),
			IsFeatured:     w.IsFeatured,
		})
	}
	return out, nil
}

// GetWhistleblower resolves an id-or-slug identifier to the full detail
// aggregate. Both identifier forms return the identical aggregate; unverified
// rows are a miss either way.
func (s *Service) GetWhistleblower(ctx context.Context, identifier string) (*models.WhistleblowerDetail, error) {
	var (
		w   *models.Whistleblower
		err error
	)
	if id, ok := parseID(identifier); ok {
		w, err = s.store.GetWhistleblowerByID(ctx, id)
	} else {
		w, err = s.store.GetWhistleblowerBySlug(ctx, identifier)
	}
	if err != nil {
		return nil, s.missOrInternal(err, "get whistleblower", "whistleblower", msgWhistleblowerNotFound)
	}

	domains, err := s.domainsFor(ctx, models.OwnerWhistleblower, w.ID)
	if err != nil {
		return nil, internalErr("list whistleblower domains", err)
	}
	resources, err := s.store.ListResources(ctx, models.Owner{Kind: models.OwnerWhistleblower, ID: w.ID})
	if err != nil {
		return nil, internalErr("list whistleblower resources", err)
	}
	related, err := s.store.ListCaseRefsForWhistleblower(ctx, w.ID)
	if err != nil {
		return nil, internalErr("list related cases", err)
	}

	return &models.WhistleblowerDetail{
		ID:                   w.ID,
		Slug:                 w.Slug,
		Name:                 w.Name,
		PhotoURL:             w.PhotoURL,
		Nationality:          w.Nationality,
		BirthYear:            w.BirthYear,
		Profession:           w.Profession,
		MainRevelation:       w.MainRevelation,
		RevelationYear:       w.RevelationYear,
		Summary:              w.Summary,
		Context:              w.Context,
		Stakes:               w.Stakes,
		Impact:               w.Impact,
		Status:               w.Status,
		RefugeCountry:        w.RefugeCountry,
		PersonalConsequences: w.PersonalConsequences,
		IsProtected:          w.IsProtected,
		Awards:               w.Awards,
		Quote:                w.Quote,
		QuoteSource:          w.QuoteSource,
		Domains:              domains,
		Resources:            resources,
		RelatedCases:         related,
		IsFeatured:           w.IsFeatured,
		IsVerified:           w.IsVerified,
	}, nil
}
