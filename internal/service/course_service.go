package service

import (
	"context"
	"fmt"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// CourseService defines the interface for course operations. Every method
// takes the caller's instructor ID explicitly; a course that exists but is
// owned by someone else behaves exactly like one that does not exist.
type CourseService interface {
	CreateCourse(ctx context.Context, instructorID, title string, categoryID, subCategoryID *string) (*model.Course, error)
	GetCourse(ctx context.Context, instructorID, courseID string) (*model.Course, error)
	ListCourses(ctx context.Context, instructorID string) ([]model.Course, error)
	UpdateCourse(ctx context.Context, instructorID string, c *model.Course) (*model.Course, error)
	// DeleteCourse removes the course and its remote video assets. Remote
	// deletes run first; a failure there aborts before any local rows go.
	DeleteCourse(ctx context.Context, instructorID, courseID string) error

	// Completeness reports which required fields are still missing.
	Completeness(ctx context.Context, instructorID, courseID string) (*CompletenessReport, error)
	// PublishCourse fails with a ValidationError while the course is incomplete.
	PublishCourse(ctx context.Context, instructorID, courseID string) (*model.Course, error)
	// UnpublishCourse unconditionally takes the course off the air.
	UnpublishCourse(ctx context.Context, instructorID, courseID string) (*model.Course, error)
}

// courseService is the implementation of CourseService
type courseService struct {
	repo        repository.CourseRepository
	sectionRepo repository.SectionRepository
	assetRepo   repository.VideoAssetRepository
	videoHost   VideoHostClient
	events      *EventEmitter
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	repo repository.CourseRepository,
	sectionRepo repository.SectionRepository,
	assetRepo repository.VideoAssetRepository,
	videoHost VideoHostClient,
	events *EventEmitter,
	logger zerolog.Logger,
) CourseService {
	return &courseService{
		repo:        repo,
		sectionRepo: sectionRepo,
		assetRepo:   assetRepo,
		videoHost:   videoHost,
		events:      events,
		logger:      logger.With().Str("service", "CourseService").Logger(),
	}
}

func (s *courseService) CreateCourse(ctx context.Context, instructorID, title string, categoryID, subCategoryID *string) (*model.Course, error) {
	course := &model.Course{
		InstructorID:  instructorID,
		Title:         title,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
	}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) GetCourse(ctx context.Context, instructorID, courseID string) (*model.Course, error) {
	course, err := s.repo.GetCourseForInstructor(ctx, courseID, instructorID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}
	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context, instructorID string) ([]model.Course, error) {
	return s.repo.GetCoursesByInstructorID(ctx, instructorID)
}

func (s *courseService) UpdateCourse(ctx context.Context, instructorID string, c *model.Course) (*model.Course, error) {
	existing, err := s.repo.GetCourseForInstructor(ctx, c.ID, instructorID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, instructorID, courseID string) error {
	course, err := s.repo.GetCourseForInstructor(ctx, courseID, instructorID)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrNotFound
	}

	assets, err := s.assetRepo.GetVideoAssetsByCourseID(ctx, courseID)
	if err != nil {
		return err
	}
	for _, asset := range assets {
		if err := s.videoHost.DeleteAsset(ctx, asset.AssetID); err != nil {
			return fmt.Errorf("deleting video asset %s: %w", asset.AssetID, err)
		}
		if err := s.assetRepo.DeleteVideoAsset(ctx, asset.ID); err != nil {
			// Remote asset is already gone; surface the inconsistency.
			return fmt.Errorf("video asset %s deleted remotely but local record removal failed: %w", asset.AssetID, err)
		}
	}

	if err := s.repo.DeleteCourse(ctx, courseID); err != nil {
		return err
	}
	s.logger.Info().Str("course_id", courseID).Msg("Course deleted")
	return nil
}

func (s *courseService) Completeness(ctx context.Context, instructorID, courseID string) (*CompletenessReport, error) {
	course, err := s.repo.GetCourseForInstructor(ctx, courseID, instructorID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}

	publishedCount, err := s.sectionRepo.CountPublished(ctx, courseID)
	if err != nil {
		return nil, err
	}

	report := EvaluateCourse(course, publishedCount > 0)
	return &report, nil
}

func (s *courseService) PublishCourse(ctx context.Context, instructorID, courseID string) (*model.Course, error) {
	course, err := s.repo.GetCourseForInstructor(ctx, courseID, instructorID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}

	publishedCount, err := s.sectionRepo.CountPublished(ctx, courseID)
	if err != nil {
		return nil, err
	}

	report := EvaluateCourse(course, publishedCount > 0)
	if !report.IsComplete {
		return nil, &ValidationError{Missing: report.MissingFields}
	}

	if err := s.repo.SetCoursePublished(ctx, courseID, true); err != nil {
		return nil, err
	}
	course.IsPublished = true

	s.events.Emit(ctx, "course.published", courseID, "", instructorID)
	return course, nil
}

func (s *courseService) UnpublishCourse(ctx context.Context, instructorID, courseID string) (*model.Course, error) {
	course, err := s.repo.GetCourseForInstructor(ctx, courseID, instructorID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.SetCoursePublished(ctx, courseID, false); err != nil {
		return nil, err
	}
	course.IsPublished = false

	s.events.Emit(ctx, "course.unpublished", courseID, "", instructorID)
	return course, nil
}
