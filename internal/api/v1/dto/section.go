package dto

import (
	"time"

	"app/internal/model"
)

// SectionCreateDTO is used for incoming section creation requests. The new
// section is appended after the course's existing sections.
type SectionCreateDTO struct {
	Title string `json:"title" validate:"required"`
}

// SectionUpdateDTO is used for incoming section update requests; nil fields
// are left unchanged
type SectionUpdateDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
	IsFree      *bool   `json:"is_free,omitempty"`
}

// SectionReorderDTO carries the caller's desired ordering
type SectionReorderDTO struct {
	List []SectionPositionDTO `json:"list" validate:"required,min=1,dive"`
}

type SectionPositionDTO struct {
	ID       string `json:"id" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

// SectionResponseDTO is returned in API responses for sections
type SectionResponseDTO struct {
	SectionID   string    `json:"section_id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `json:"video_url"`
	Position    int       `json:"position"`
	IsFree      bool      `json:"is_free"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSectionResponse maps a section model to its response DTO
func NewSectionResponse(s *model.Section) SectionResponseDTO {
	return SectionResponseDTO{
		SectionID:   s.ID,
		CourseID:    s.CourseID,
		Title:       s.Title,
		Description: s.Description,
		VideoURL:    s.VideoURL,
		Position:    s.Position,
		IsFree:      s.IsFree,
		IsPublished: s.IsPublished,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
