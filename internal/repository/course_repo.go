package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	CreateCourse(ctx context.Context, c *model.Course) error
	// GetCourseByID retrieves a course by its ID regardless of owner
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	// GetCourseForInstructor retrieves a course only when owned by the instructor
	GetCourseForInstructor(ctx context.Context, courseID, instructorID string) (*model.Course, error)
	GetCoursesByInstructorID(ctx context.Context, instructorID string) ([]model.Course, error)
	UpdateCourse(ctx context.Context, c *model.Course) error
	SetCoursePublished(ctx context.Context, courseID string, published bool) error
	DeleteCourse(ctx context.Context, courseID string) error
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

const courseColumns = `id, instructor_id, title, subtitle, description, image_url, price,
		category_id, sub_category_id, level_id, is_published, created_at, updated_at`

func scanCourse(row interface{ Scan(dest ...any) error }, c *model.Course) error {
	return row.Scan(
		&c.ID,
		&c.InstructorID,
		&c.Title,
		&c.Subtitle,
		&c.Description,
		&c.ImageURL,
		&c.Price,
		&c.CategoryID,
		&c.SubCategoryID,
		&c.LevelID,
		&c.IsPublished,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

// CreateCourse inserts a new course and fills in the generated fields
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (instructor_id, title, category_id, sub_category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + courseColumns
	row := r.db.QueryRowContext(ctx, query, c.InstructorID, c.Title, c.CategoryID, c.SubCategoryID)
	if err := scanCourse(row, c); err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}
	return nil
}

func (r *courseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	var c model.Course
	if err := scanCourse(r.db.QueryRowContext(ctx, query, courseID), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan course row: %w", err)
	}
	return &c, nil
}

func (r *courseRepo) GetCourseForInstructor(ctx context.Context, courseID, instructorID string) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 AND instructor_id = $2`
	var c model.Course
	if err := scanCourse(r.db.QueryRowContext(ctx, query, courseID, instructorID), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan course row: %w", err)
	}
	return &c, nil
}

// GetCoursesByInstructorID retrieves all courses owned by an instructor
func (r *courseRepo) GetCoursesByInstructorID(ctx context.Context, instructorID string) ([]model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE instructor_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}
	return courses, nil
}

// UpdateCourse writes the mutable course fields and refreshes updated_at
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET title = $1, subtitle = $2, description = $3, image_url = $4, price = $5,
			category_id = $6, sub_category_id = $7, level_id = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + courseColumns
	row := r.db.QueryRowContext(ctx, query,
		c.Title, c.Subtitle, c.Description, c.ImageURL, c.Price,
		c.CategoryID, c.SubCategoryID, c.LevelID, c.ID)
	if err := scanCourse(row, c); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

func (r *courseRepo) SetCoursePublished(ctx context.Context, courseID string, published bool) error {
	query := `UPDATE courses SET is_published = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, published, courseID); err != nil {
		return fmt.Errorf("failed to update course publish state: %w", err)
	}
	return nil
}

// DeleteCourse removes the course row; owned sections, video assets and
// resources are removed by the schema's ON DELETE CASCADE.
func (r *courseRepo) DeleteCourse(ctx context.Context, courseID string) error {
	query := `DELETE FROM courses WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, courseID); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}
