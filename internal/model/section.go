package model

import "time"

// Section is an ordered sub-unit of a course. Position is a dense zero-based
// index unique within the owning course; appends always take max(position)+1,
// so gaps left by deletions are tolerated.
type Section struct {
	ID          string    `db:"id" json:"id"`
	CourseID    string    `db:"course_id" json:"course_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	VideoURL    string    `db:"video_url" json:"video_url"`
	Position    int       `db:"position" json:"position"`
	IsFree      bool      `db:"is_free" json:"is_free"`
	IsPublished bool      `db:"is_published" json:"is_published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// SectionPosition is one entry of a reorder payload.
type SectionPosition struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}
