package dto

import (
	"time"

	"app/internal/model"
)

// CourseCreateDTO is used for incoming course creation requests
type CourseCreateDTO struct {
	Title         string  `json:"title" validate:"required"`
	CategoryID    *string `json:"category_id,omitempty"`
	SubCategoryID *string `json:"sub_category_id,omitempty"`
}

// CourseUpdateDTO is used for incoming course update requests; nil fields
// are left unchanged
type CourseUpdateDTO struct {
	Title         *string  `json:"title,omitempty"`
	Subtitle      *string  `json:"subtitle,omitempty"`
	Description   *string  `json:"description,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CategoryID    *string  `json:"category_id,omitempty"`
	SubCategoryID *string  `json:"sub_category_id,omitempty"`
	LevelID       *string  `json:"level_id,omitempty"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	CourseID      string    `json:"course_id"`
	InstructorID  string    `json:"instructor_id"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	Price         float64   `json:"price"`
	CategoryID    *string   `json:"category_id,omitempty"`
	SubCategoryID *string   `json:"sub_category_id,omitempty"`
	LevelID       *string   `json:"level_id,omitempty"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewCourseResponse maps a course model to its response DTO
func NewCourseResponse(c *model.Course) CourseResponseDTO {
	return CourseResponseDTO{
		CourseID:      c.ID,
		InstructorID:  c.InstructorID,
		Title:         c.Title,
		Subtitle:      c.Subtitle,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		Price:         c.Price,
		CategoryID:    c.CategoryID,
		SubCategoryID: c.SubCategoryID,
		LevelID:       c.LevelID,
		IsPublished:   c.IsPublished,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
