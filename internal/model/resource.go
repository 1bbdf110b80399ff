package model

import "time"

// Resource is a named downloadable file attached to a section.
type Resource struct {
	ID        string    `db:"id" json:"id"`
	SectionID string    `db:"section_id" json:"section_id"`
	Name      string    `db:"name" json:"name"`
	FileURL   string    `db:"file_url" json:"file_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
