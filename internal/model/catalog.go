package model

// Category is a flat lookup entity owning a set of sub-categories.
type Category struct {
	ID            string        `db:"id" json:"id"`
	Name          string        `db:"name" json:"name"`
	SubCategories []SubCategory `json:"sub_categories,omitempty"`
}

type SubCategory struct {
	ID         string `db:"id" json:"id"`
	CategoryID string `db:"category_id" json:"category_id"`
	Name       string `db:"name" json:"name"`
}

// Level is a flat lookup entity (Beginner, Intermediate, ...).
type Level struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
