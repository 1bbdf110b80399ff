package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

// SectionRepository defines the interface for interacting with section data
type SectionRepository interface {
	CreateSection(ctx context.Context, s *model.Section) error
	// GetSectionByID retrieves a section scoped to its owning course
	GetSectionByID(ctx context.Context, courseID, sectionID string) (*model.Section, error)
	// GetSectionsByCourseID returns the course's sections ordered by position
	GetSectionsByCourseID(ctx context.Context, courseID string) ([]model.Section, error)
	// NextPosition returns max(position)+1 for the course, 0 when it has no sections
	NextPosition(ctx context.Context, courseID string) (int, error)
	UpdateSection(ctx context.Context, s *model.Section) error
	// UpdatePosition writes a single section's position within its course
	UpdatePosition(ctx context.Context, courseID, sectionID string, position int) error
	SetSectionPublished(ctx context.Context, courseID, sectionID string, published bool) error
	// CountPublished counts the course's published sections
	CountPublished(ctx context.Context, courseID string) (int, error)
	DeleteSection(ctx context.Context, courseID, sectionID string) error
}

type sectionRepo struct {
	db *sql.DB
}

// NewSectionRepo creates a new SectionRepository
func NewSectionRepo(db *sql.DB) SectionRepository {
	return &sectionRepo{db: db}
}

const sectionColumns = `id, course_id, title, description, video_url, position,
		is_free, is_published, created_at, updated_at`

func scanSection(row interface{ Scan(dest ...any) error }, s *model.Section) error {
	return row.Scan(
		&s.ID,
		&s.CourseID,
		&s.Title,
		&s.Description,
		&s.VideoURL,
		&s.Position,
		&s.IsFree,
		&s.IsPublished,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

// CreateSection inserts a new section at the position already set on the model
func (r *sectionRepo) CreateSection(ctx context.Context, s *model.Section) error {
	query := `
		INSERT INTO sections (course_id, title, position)
		VALUES ($1, $2, $3)
		RETURNING ` + sectionColumns
	row := r.db.QueryRowContext(ctx, query, s.CourseID, s.Title, s.Position)
	if err := scanSection(row, s); err != nil {
		return fmt.Errorf("failed to insert section: %w", err)
	}
	return nil
}

func (r *sectionRepo) GetSectionByID(ctx context.Context, courseID, sectionID string) (*model.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1 AND course_id = $2`
	var s model.Section
	if err := scanSection(r.db.QueryRowContext(ctx, query, sectionID, courseID), &s); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan section row: %w", err)
	}
	return &s, nil
}

func (r *sectionRepo) GetSectionsByCourseID(ctx context.Context, courseID string) ([]model.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE course_id = $1 ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		var s model.Section
		if err := scanSection(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan section row: %w", err)
		}
		sections = append(sections, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if len(sections) == 0 {
		return []model.Section{}, nil
	}
	return sections, nil
}

func (r *sectionRepo) NextPosition(ctx context.Context, courseID string) (int, error) {
	// COALESCE to -1 so the first section of a course lands at position 0.
	query := `SELECT COALESCE(MAX(position), -1) + 1 FROM sections WHERE course_id = $1`
	var next int
	if err := r.db.QueryRowContext(ctx, query, courseID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next position: %w", err)
	}
	return next, nil
}

func (r *sectionRepo) UpdateSection(ctx context.Context, s *model.Section) error {
	query := `
		UPDATE sections
		SET title = $1, description = $2, video_url = $3, is_free = $4, updated_at = NOW()
		WHERE id = $5 AND course_id = $6
		RETURNING ` + sectionColumns
	row := r.db.QueryRowContext(ctx, query, s.Title, s.Description, s.VideoURL, s.IsFree, s.ID, s.CourseID)
	if err := scanSection(row, s); err != nil {
		return fmt.Errorf("failed to update section: %w", err)
	}
	return nil
}

func (r *sectionRepo) UpdatePosition(ctx context.Context, courseID, sectionID string, position int) error {
	query := `UPDATE sections SET position = $1, updated_at = NOW() WHERE id = $2 AND course_id = $3`
	if _, err := r.db.ExecContext(ctx, query, position, sectionID, courseID); err != nil {
		return fmt.Errorf("failed to update section position: %w", err)
	}
	return nil
}

func (r *sectionRepo) SetSectionPublished(ctx context.Context, courseID, sectionID string, published bool) error {
	query := `UPDATE sections SET is_published = $1, updated_at = NOW() WHERE id = $2 AND course_id = $3`
	if _, err := r.db.ExecContext(ctx, query, published, sectionID, courseID); err != nil {
		return fmt.Errorf("failed to update section publish state: %w", err)
	}
	return nil
}

func (r *sectionRepo) CountPublished(ctx context.Context, courseID string) (int, error) {
	query := `SELECT COUNT(*) FROM sections WHERE course_id = $1 AND is_published = TRUE`
	var count int
	if err := r.db.QueryRowContext(ctx, query, courseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count published sections: %w", err)
	}
	return count, nil
}

func (r *sectionRepo) DeleteSection(ctx context.Context, courseID, sectionID string) error {
	query := `DELETE FROM sections WHERE id = $1 AND course_id = $2`
	if _, err := r.db.ExecContext(ctx, query, sectionID, courseID); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}
