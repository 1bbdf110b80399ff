package service

import (
	"context"
	"fmt"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// SectionUpdate is a partial patch for a section. Nil fields are untouched.
// A non-nil VideoURL triggers re-ingestion at the video host.
type SectionUpdate struct {
	Title       *string
	Description *string
	VideoURL    *string
	IsFree      *bool
}

// SectionService defines section operations: ordering, publish state, video
// lifecycle. All methods are scoped by the owning instructor.
type SectionService interface {
	// CreateSection appends a section at max(position)+1, 0 on an empty course.
	CreateSection(ctx context.Context, instructorID, courseID, title string) (*model.Section, error)
	GetSection(ctx context.Context, instructorID, courseID, sectionID string) (*model.Section, error)
	ListSections(ctx context.Context, instructorID, courseID string) ([]model.Section, error)
	UpdateSection(ctx context.Context, instructorID, courseID, sectionID string, update SectionUpdate) (*model.Section, error)
	// Reorder writes positions one by one, in payload order, without a
	// transaction. Every id must belong to the course; the payload need not
	// cover the whole section set.
	Reorder(ctx context.Context, instructorID, courseID string, items []model.SectionPosition) error
	// DeleteSection removes the section and its remote video asset, then
	// unpublishes the course if no published section remains.
	DeleteSection(ctx context.Context, instructorID, courseID, sectionID string) error

	Completeness(ctx context.Context, instructorID, courseID, sectionID string) (*CompletenessReport, error)
	PublishSection(ctx context.Context, instructorID, courseID, sectionID string) (*model.Section, error)
	UnpublishSection(ctx context.Context, instructorID, courseID, sectionID string) (*model.Section, error)
}

// sectionService is the implementation of SectionService
type sectionService struct {
	repo       repository.SectionRepository
	courseRepo repository.CourseRepository
	assetRepo  repository.VideoAssetRepository
	videoHost  VideoHostClient
	events     *EventEmitter
	logger     zerolog.Logger
}

// NewSectionService creates a new SectionService
func NewSectionService(
	repo repository.SectionRepository,
	courseRepo repository.CourseRepository,
	assetRepo repository.VideoAssetRepository,
	videoHost VideoHostClient,
	events *EventEmitter,
	logger zerolog.Logger,
) SectionService {
	return &sectionService{
		repo:       repo,
		courseRepo: courseRepo,
		assetRepo:  assetRepo,
		videoHost:  videoHost,
		events:     events,
		logger:     logger.With().Str("service", "SectionService").Logger(),
	}
}

// getOwnedCourse resolves the course for the instructor or reports ErrNotFound.
func (s *sectionService) getOwnedCourse(ctx context.Context, instructorID, courseID string) (*model.Course, error) {
	course, err := s.courseRepo.GetCourseForInstructor(ctx, courseID, instructorID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}
	return course, nil
}

func (s *sectionService) getOwnedSection(ctx context.Context, instructorID, courseID, sectionID string) (*model.Section, error) {
	if _, err := s.getOwnedCourse(ctx, instructorID, courseID); err != nil {
		return nil, err
	}
	section, err := s.repo.GetSectionByID(ctx, courseID, sectionID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrNotFound
	}
	return section, nil
}

func (s *sectionService) CreateSection(ctx context.Context, instructorID, courseID, title string) (*model.Section, error) {
	if _, err := s.getOwnedCourse(ctx, instructorID, courseID); err != nil {
		return nil, err
	}

	position, err := s.repo.NextPosition(ctx, courseID)
	if err != nil {
		return nil, err
	}

	section := &model.Section{
		CourseID: courseID,
		Title:    title,
		Position: position,
	}
	if err := s.repo.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *sectionService) GetSection(ctx context.Context, instructorID, courseID, sectionID string) (*model.Section, error) {
	return s.getOwnedSection(ctx, instructorID, courseID, sectionID)
}

func (s *sectionService) ListSections(ctx context.Context, instructorID, courseID string) ([]model.Section, error) {
	if _, err := s.getOwnedCourse(ctx, instructorID, courseID); err != nil {
		return nil, err
	}
	return s.repo.GetSectionsByCourseID(ctx, courseID)
}

func (s *sectionService) UpdateSection(ctx context.Context, instructorID, courseID, sectionID string, update SectionUpdate) (*model.Section, error) {
	section, err := s.getOwnedSection(ctx, instructorID, courseID, sectionID)
	if err != nil {
		return nil, err
	}

	videoChanged := update.VideoURL != nil && *update.VideoURL != section.VideoURL

	if update.Title != nil {
		section.Title = *update.Title
	}
	if update.Description != nil {
		section.Description = *update.Description
	}
	if update.VideoURL != nil {
		section.VideoURL = *update.VideoURL
	}
	if update.IsFree != nil {
		section.IsFree = *update.IsFree
	}

	if videoChanged {
		if err := s.replaceVideoAsset(ctx, section); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// replaceVideoAsset swaps the section's remote asset for one ingested from
// the section's current video URL. The old asset is removed remotely before
// its local row, so a partial failure never leaves an orphan pointer.
func (s *sectionService) replaceVideoAsset(ctx context.Context, section *model.Section) error {
	existing, err := s.assetRepo.GetVideoAssetBySectionID(ctx, section.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		if err := s.videoHost.DeleteAsset(ctx, existing.AssetID); err != nil {
			return fmt.Errorf("deleting replaced video asset: %w", err)
		}
		if err := s.assetRepo.DeleteVideoAsset(ctx, existing.ID); err != nil {
			return fmt.Errorf("video asset %s deleted remotely but local record removal failed: %w", existing.AssetID, err)
		}
	}

	if section.VideoURL == "" {
		return nil
	}

	info, err := s.videoHost.CreateAsset(ctx, section.VideoURL)
	if err != nil {
		return fmt.Errorf("creating video asset: %w", err)
	}
	asset := &model.VideoAsset{
		SectionID:  section.ID,
		AssetID:    info.AssetID,
		PlaybackID: info.PlaybackID,
	}
	return s.assetRepo.CreateVideoAsset(ctx, asset)
}

func (s *sectionService) Reorder(ctx context.Context, instructorID, courseID string, items []model.SectionPosition) error {
	if _, err := s.getOwnedCourse(ctx, instructorID, courseID); err != nil {
		return err
	}

	sections, err := s.repo.GetSectionsByCourseID(ctx, courseID)
	if err != nil {
		return err
	}
	owned := make(map[string]bool, len(sections))
	for _, sec := range sections {
		owned[sec.ID] = true
	}
	for _, item := range items {
		if !owned[item.ID] {
			return ErrNotFound
		}
	}

	// Positions are written one at a time; a failure part-way leaves the
	// earlier writes in place. Accepted for this domain.
	for _, item := range items {
		if err := s.repo.UpdatePosition(ctx, courseID, item.ID, item.Position); err != nil {
			return err
		}
	}
	return nil
}

func (s *sectionService) DeleteSection(ctx context.Context, instructorID, courseID, sectionID string) error {
	section, err := s.getOwnedSection(ctx, instructorID, courseID, sectionID)
	if err != nil {
		return err
	}

	asset, err := s.assetRepo.GetVideoAssetBySectionID(ctx, sectionID)
	if err != nil {
		return err
	}
	if asset != nil {
		if err := s.videoHost.DeleteAsset(ctx, asset.AssetID); err != nil {
			return fmt.Errorf("deleting video asset %s: %w", asset.AssetID, err)
		}
		if err := s.assetRepo.DeleteVideoAsset(ctx, asset.ID); err != nil {
			return fmt.Errorf("video asset %s deleted remotely but local record removal failed: %w", asset.AssetID, err)
		}
	}

	if err := s.repo.DeleteSection(ctx, courseID, sectionID); err != nil {
		return err
	}
	s.logger.Info().Str("section_id", sectionID).Str("course_id", courseID).Msg("Section deleted")

	return s.cascadeCourseUnpublish(ctx, section.CourseID, instructorID)
}

func (s *sectionService) Completeness(ctx context.Context, instructorID, courseID, sectionID string) (*CompletenessReport, error) {
	section, err := s.getOwnedSection(ctx, instructorID, courseID, sectionID)
	if err != nil {
		return nil, err
	}
	report := EvaluateSection(section)
	return &report, nil
}

func (s *sectionService) PublishSection(ctx context.Context, instructorID, courseID, sectionID string) (*model.Section, error) {
	section, err := s.getOwnedSection(ctx, instructorID, courseID, sectionID)
	if err != nil {
		return nil, err
	}

	// Publishing requires the ingested asset, not just the raw video URL.
	asset, err := s.assetRepo.GetVideoAssetBySectionID(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, ErrNotFound
	}

	report := EvaluateSection(section)
	if !report.IsComplete {
		return nil, &ValidationError{Missing: report.MissingFields}
	}

	if err := s.repo.SetSectionPublished(ctx, courseID, sectionID, true); err != nil {
		return nil, err
	}
	section.IsPublished = true

	s.events.Emit(ctx, "section.published", courseID, sectionID, instructorID)
	return section, nil
}

func (s *sectionService) UnpublishSection(ctx context.Context, instructorID, courseID, sectionID string) (*model.Section, error) {
	section, err := s.getOwnedSection(ctx, instructorID, courseID, sectionID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetSectionPublished(ctx, courseID, sectionID, false); err != nil {
		return nil, err
	}
	section.IsPublished = false

	s.events.Emit(ctx, "section.unpublished", courseID, sectionID, instructorID)

	if err := s.cascadeCourseUnpublish(ctx, courseID, instructorID); err != nil {
		return nil, err
	}
	return section, nil
}

// cascadeCourseUnpublish demotes the course when none of its sections remain
// published.
func (s *sectionService) cascadeCourseUnpublish(ctx context.Context, courseID, instructorID string) error {
	publishedCount, err := s.repo.CountPublished(ctx, courseID)
	if err != nil {
		return err
	}
	if publishedCount > 0 {
		return nil
	}
	if err := s.courseRepo.SetCoursePublished(ctx, courseID, false); err != nil {
		return err
	}
	s.logger.Info().Str("course_id", courseID).Msg("Course unpublished: no published sections remain")
	s.events.Emit(ctx, "course.unpublished", courseID, "", instructorID)
	return nil
}
