package model

import "time"

// VideoAsset links a section to its asset at the video hosting service.
// A section holds at most one; replacing a section's video replaces the row.
type VideoAsset struct {
	ID         string    `db:"id" json:"id"`
	SectionID  string    `db:"section_id" json:"section_id"`
	AssetID    string    `db:"asset_id" json:"asset_id"`
	PlaybackID string    `db:"playback_id" json:"playback_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
