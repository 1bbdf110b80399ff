package service

import (
	"context"
	"testing"

	"app/internal/model"
)

type fakeCatalogRepo struct {
	categories    []model.Category
	subCategories []model.SubCategory
	levels        []model.Level
}

func (r *fakeCatalogRepo) GetCategories(_ context.Context) ([]model.Category, error) {
	return r.categories, nil
}

func (r *fakeCatalogRepo) GetSubCategories(_ context.Context) ([]model.SubCategory, error) {
	return r.subCategories, nil
}

func (r *fakeCatalogRepo) GetLevels(_ context.Context) ([]model.Level, error) {
	return r.levels, nil
}

func TestListCategoriesNestsSubCategories(t *testing.T) {
	repo := &fakeCatalogRepo{
		categories: []model.Category{
			{ID: "cat-1", Name: "IT & Software"},
			{ID: "cat-2", Name: "Music"},
		},
		subCategories: []model.SubCategory{
			{ID: "sub-1", CategoryID: "cat-1", Name: "Web Development"},
			{ID: "sub-2", CategoryID: "cat-1", Name: "Data Science"},
			{ID: "sub-3", CategoryID: "cat-2", Name: "Guitar"},
		},
	}
	svc := NewCatalogService(repo)

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if len(categories[0].SubCategories) != 2 {
		t.Errorf("cat-1 has %d sub-categories, want 2", len(categories[0].SubCategories))
	}
	if len(categories[1].SubCategories) != 1 {
		t.Errorf("cat-2 has %d sub-categories, want 1", len(categories[1].SubCategories))
	}
	if categories[1].SubCategories[0].Name != "Guitar" {
		t.Errorf("cat-2 sub-category = %q, want Guitar", categories[1].SubCategories[0].Name)
	}
}

func TestListCategoriesEmpty(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if categories == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(categories) != 0 {
		t.Errorf("got %d categories, want 0", len(categories))
	}
}
