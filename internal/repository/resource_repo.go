package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

// ResourceRepository defines the interface for interacting with section resources
type ResourceRepository interface {
	CreateResource(ctx context.Context, res *model.Resource) error
	// GetResourcesBySectionID returns a section's resources in insertion order
	GetResourcesBySectionID(ctx context.Context, sectionID string) ([]model.Resource, error)
	// DeleteResource removes a resource scoped to its section and reports
	// whether a row was actually deleted.
	DeleteResource(ctx context.Context, sectionID, resourceID string) (bool, error)
}

type resourceRepo struct {
	db *sql.DB
}

// NewResourceRepo creates a new ResourceRepository
func NewResourceRepo(db *sql.DB) ResourceRepository {
	return &resourceRepo{db: db}
}

func (r *resourceRepo) CreateResource(ctx context.Context, res *model.Resource) error {
	query := `
		INSERT INTO resources (section_id, name, file_url)
		VALUES ($1, $2, $3)
		RETURNING id, section_id, name, file_url, created_at
	`
	err := r.db.QueryRowContext(ctx, query, res.SectionID, res.Name, res.FileURL).
		Scan(&res.ID, &res.SectionID, &res.Name, &res.FileURL, &res.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert resource: %w", err)
	}
	return nil
}

func (r *resourceRepo) GetResourcesBySectionID(ctx context.Context, sectionID string) ([]model.Resource, error) {
	query := `
		SELECT id, section_id, name, file_url, created_at
		FROM resources
		WHERE section_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	var resources []model.Resource
	for rows.Next() {
		var res model.Resource
		if err := rows.Scan(&res.ID, &res.SectionID, &res.Name, &res.FileURL, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if len(resources) == 0 {
		return []model.Resource{}, nil
	}
	return resources, nil
}

func (r *resourceRepo) DeleteResource(ctx context.Context, sectionID, resourceID string) (bool, error) {
	query := `DELETE FROM resources WHERE id = $1 AND section_id = $2`
	result, err := r.db.ExecContext(ctx, query, resourceID, sectionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete resource: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
