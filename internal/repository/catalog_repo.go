package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

// CatalogRepository exposes the category/sub-category/level lookup tables
type CatalogRepository interface {
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetSubCategories(ctx context.Context) ([]model.SubCategory, error)
	GetLevels(ctx context.Context) ([]model.Level, error)
}

type catalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo creates a new CatalogRepository
func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) GetCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return categories, nil
}

func (r *catalogRepo) GetSubCategories(ctx context.Context) ([]model.SubCategory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, category_id, name FROM sub_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-categories: %w", err)
	}
	defer rows.Close()

	var subCategories []model.SubCategory
	for rows.Next() {
		var sc model.SubCategory
		if err := rows.Scan(&sc.ID, &sc.CategoryID, &sc.Name); err != nil {
			return nil, fmt.Errorf("failed to scan sub-category row: %w", err)
		}
		subCategories = append(subCategories, sc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return subCategories, nil
}

func (r *catalogRepo) GetLevels(ctx context.Context) ([]model.Level, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM levels ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query levels: %w", err)
	}
	defer rows.Close()

	var levels []model.Level
	for rows.Next() {
		var l model.Level
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("failed to scan level row: %w", err)
		}
		levels = append(levels, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return levels, nil
}
