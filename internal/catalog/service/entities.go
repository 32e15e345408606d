package service

import (
	"context"

	"sentinelles/internal/catalog/models"
)

// ListEntities returns every organization matching the optional name search,
// each with its verified case count.
func (s *Service) ListEntities(ctx context.Context, search string) ([]models.EntityListItem, error) {
	out, err := s.store.ListEntities(ctx, search)
	if err != nil {
		return nil, internalErr("list entities", err)
	}
	return out, nil
}

// GetEntity resolves an id-or-slug identifier to the organization plus its
// verified cases.
func (s *Service) GetEntity(ctx context.Context, identifier string) (*models.EntityDetail, error) {
	var (
		e   *models.Entity
		err error
	)
	if id, ok := parseID(identifier); ok {
		e, err = s.store.GetEntityByID(ctx, id)
	} else {
		e, err = s.store.GetEntityBySlug(ctx, identifier)
	}
	if err != nil {
		return nil, s.missOrInternal(err, "get entity", "entity", msgEntityNotFound)
	}

	cases, err := s.store.ListCaseRefsForEntity(ctx, e.ID)
	if err != nil {
		return nil, internalErr("list entity cases", err)
	}

	return &models.EntityDetail{
		ID:          e.ID,
		Slug:        e.Slug,
		Name:        e.Name,
		EntityType:  e.EntityType,
		Country:     e.Country,
		Description: e.Description,
		LogoURL:     e.LogoURL,
		Cases:       cases,
	}, nil
}
