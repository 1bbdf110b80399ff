package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

// VideoAssetRepository defines the interface for section video metadata
type VideoAssetRepository interface {
	CreateVideoAsset(ctx context.Context, a *model.VideoAsset) error
	// GetVideoAssetBySectionID returns the section's asset row, nil when absent
	GetVideoAssetBySectionID(ctx context.Context, sectionID string) (*model.VideoAsset, error)
	// GetVideoAssetsByCourseID returns asset rows for all sections of a course
	GetVideoAssetsByCourseID(ctx context.Context, courseID string) ([]model.VideoAsset, error)
	DeleteVideoAsset(ctx context.Context, id string) error
}

type videoAssetRepo struct {
	db *sql.DB
}

// NewVideoAssetRepo creates a new VideoAssetRepository
func NewVideoAssetRepo(db *sql.DB) VideoAssetRepository {
	return &videoAssetRepo{db: db}
}

func (r *videoAssetRepo) CreateVideoAsset(ctx context.Context, a *model.VideoAsset) error {
	query := `
		INSERT INTO video_assets (section_id, asset_id, playback_id)
		VALUES ($1, $2, $3)
		RETURNING id, section_id, asset_id, playback_id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, a.SectionID, a.AssetID, a.PlaybackID).
		Scan(&a.ID, &a.SectionID, &a.AssetID, &a.PlaybackID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert video asset: %w", err)
	}
	return nil
}

func (r *videoAssetRepo) GetVideoAssetBySectionID(ctx context.Context, sectionID string) (*model.VideoAsset, error) {
	query := `
		SELECT id, section_id, asset_id, playback_id, created_at
		FROM video_assets
		WHERE section_id = $1
	`
	var a model.VideoAsset
	err := r.db.QueryRowContext(ctx, query, sectionID).
		Scan(&a.ID, &a.SectionID, &a.AssetID, &a.PlaybackID, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan video asset row: %w", err)
	}
	return &a, nil
}

func (r *videoAssetRepo) GetVideoAssetsByCourseID(ctx context.Context, courseID string) ([]model.VideoAsset, error) {
	query := `
		SELECT va.id, va.section_id, va.asset_id, va.playback_id, va.created_at
		FROM video_assets va
		JOIN sections s ON s.id = va.section_id
		WHERE s.course_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query video assets: %w", err)
	}
	defer rows.Close()

	var assets []model.VideoAsset
	for rows.Next() {
		var a model.VideoAsset
		if err := rows.Scan(&a.ID, &a.SectionID, &a.AssetID, &a.PlaybackID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video asset row: %w", err)
		}
		assets = append(assets, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return assets, nil
}

func (r *videoAssetRepo) DeleteVideoAsset(ctx context.Context, id string) error {
	query := `DELETE FROM video_assets WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete video asset: %w", err)
	}
	return nil
}
