package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
)

// ResourceService manages the downloadable files attached to a section.
type ResourceService interface {
	AddResource(ctx context.Context, instructorID, courseID, sectionID, name, fileURL string) (*model.Resource, error)
	ListResources(ctx context.Context, instructorID, courseID, sectionID string) ([]model.Resource, error)
	// RemoveResource fails with ErrNotFound when the resource is not attached
	// to the named section; nothing is mutated in that case.
	RemoveResource(ctx context.Context, instructorID, courseID, sectionID, resourceID string) error
}

type resourceService struct {
	repo        repository.ResourceRepository
	sectionRepo repository.SectionRepository
	courseRepo  repository.CourseRepository
}

// NewResourceService creates a new ResourceService
func NewResourceService(
	repo repository.ResourceRepository,
	sectionRepo repository.SectionRepository,
	courseRepo repository.CourseRepository,
) ResourceService {
	return &resourceService{repo: repo, sectionRepo: sectionRepo, courseRepo: courseRepo}
}

func (s *resourceService) resolveSection(ctx context.Context, instructorID, courseID, sectionID string) error {
	course, err := s.courseRepo.GetCourseForInstructor(ctx, courseID, instructorID)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrNotFound
	}
	section, err := s.sectionRepo.GetSectionByID(ctx, courseID, sectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return ErrNotFound
	}
	return nil
}

func (s *resourceService) AddResource(ctx context.Context, instructorID, courseID, sectionID, name, fileURL string) (*model.Resource, error) {
	if err := s.resolveSection(ctx, instructorID, courseID, sectionID); err != nil {
		return nil, err
	}

	resource := &model.Resource{
		SectionID: sectionID,
		Name:      name,
		FileURL:   fileURL,
	}
	if err := s.repo.CreateResource(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) ListResources(ctx context.Context, instructorID, courseID, sectionID string) ([]model.Resource, error) {
	if err := s.resolveSection(ctx, instructorID, courseID, sectionID); err != nil {
		return nil, err
	}
	return s.repo.GetResourcesBySectionID(ctx, sectionID)
}

func (s *resourceService) RemoveResource(ctx context.Context, instructorID, courseID, sectionID, resourceID string) error {
	if err := s.resolveSection(ctx, instructorID, courseID, sectionID); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteResource(ctx, sectionID, resourceID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
