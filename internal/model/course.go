package model

import "time"

// Course is the top-level content unit owned by an instructor. Category,
// sub-category and level references stay nil until the instructor picks them.
type Course struct {
	ID            string    `db:"id" json:"id"`
	InstructorID  string    `db:"instructor_id" json:"instructor_id"`
	Title         string    `db:"title" json:"title"`
	Subtitle      string    `db:"subtitle" json:"subtitle"`
	Description   string    `db:"description" json:"description"`
	ImageURL      string    `db:"image_url" json:"image_url"`
	Price         float64   `db:"price" json:"price"`
	CategoryID    *string   `db:"category_id" json:"category_id,omitempty"`
	SubCategoryID *string   `db:"sub_category_id" json:"sub_category_id,omitempty"`
	LevelID       *string   `db:"level_id" json:"level_id,omitempty"`
	IsPublished   bool      `db:"is_published" json:"is_published"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
