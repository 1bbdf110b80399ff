package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
)

// CatalogService exposes the category and level lookup data used by the
// course forms. The tables are seeded by migration and read-only at runtime.
type CatalogService interface {
	// ListCategories returns all categories with their sub-categories nested.
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListLevels(ctx context.Context) ([]model.Level, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	subCategories, err := s.repo.GetSubCategories(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]model.SubCategory)
	for _, sc := range subCategories {
		byCategory[sc.CategoryID] = append(byCategory[sc.CategoryID], sc)
	}
	for i := range categories {
		categories[i].SubCategories = byCategory[categories[i].ID]
	}

	if len(categories) == 0 {
		return []model.Category{}, nil
	}
	return categories, nil
}

func (s *catalogService) ListLevels(ctx context.Context) ([]model.Level, error) {
	return s.repo.GetLevels(ctx)
}
