package dto

import (
	"time"

	"app/internal/model"
)

// ResourceCreateDTO is used for incoming resource attachment requests
type ResourceCreateDTO struct {
	Name    string `json:"name" validate:"required"`
	FileURL string `json:"file_url" validate:"required,url"`
}

// ResourceResponseDTO is returned in API responses for section resources
type ResourceResponseDTO struct {
	ResourceID string    `json:"resource_id"`
	SectionID  string    `json:"section_id"`
	Name       string    `json:"name"`
	FileURL    string    `json:"file_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewResourceResponse maps a resource model to its response DTO
func NewResourceResponse(r *model.Resource) ResourceResponseDTO {
	return ResourceResponseDTO{
		ResourceID: r.ID,
		SectionID:  r.SectionID,
		Name:       r.Name,
		FileURL:    r.FileURL,
		CreatedAt:  r.CreatedAt,
	}
}
