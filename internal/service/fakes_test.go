package service

import (
	"context"
	"fmt"
	"sort"

	"app/internal/model"

	"github.com/rs/zerolog"
)

// In-memory repository fakes backing the service tests.

type fakeCourseRepo struct {
	courses map[string]*model.Course
	nextID  int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]*model.Course)}
}

func (r *fakeCourseRepo) CreateCourse(_ context.Context, c *model.Course) error {
	r.nextID++
	c.ID = fmt.Sprintf("course-%d", r.nextID)
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) GetCourseByID(_ context.Context, courseID string) (*model.Course, error) {
	c, ok := r.courses[courseID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) GetCourseForInstructor(_ context.Context, courseID, instructorID string) (*model.Course, error) {
	c, ok := r.courses[courseID]
	if !ok || c.InstructorID != instructorID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) GetCoursesByInstructorID(_ context.Context, instructorID string) ([]model.Course, error) {
	var out []model.Course
	for _, c := range r.courses {
		if c.InstructorID == instructorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) UpdateCourse(_ context.Context, c *model.Course) error {
	if _, ok := r.courses[c.ID]; !ok {
		return fmt.Errorf("course %s not found", c.ID)
	}
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) SetCoursePublished(_ context.Context, courseID string, published bool) error {
	c, ok := r.courses[courseID]
	if !ok {
		return fmt.Errorf("course %s not found", courseID)
	}
	c.IsPublished = published
	return nil
}

func (r *fakeCourseRepo) DeleteCourse(_ context.Context, courseID string) error {
	delete(r.courses, courseID)
	return nil
}

type fakeSectionRepo struct {
	sections map[string]*model.Section
	nextID   int
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{sections: make(map[string]*model.Section)}
}

func (r *fakeSectionRepo) CreateSection(_ context.Context, s *model.Section) error {
	r.nextID++
	s.ID = fmt.Sprintf("section-%d", r.nextID)
	cp := *s
	r.sections[s.ID] = &cp
	return nil
}

func (r *fakeSectionRepo) GetSectionByID(_ context.Context, courseID, sectionID string) (*model.Section, error) {
	s, ok := r.sections[sectionID]
	if !ok || s.CourseID != courseID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSectionRepo) GetSectionsByCourseID(_ context.Context, courseID string) ([]model.Section, error) {
	var out []model.Section
	for _, s := range r.sections {
		if s.CourseID == courseID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakeSectionRepo) NextPosition(ctx context.Context, courseID string) (int, error) {
	max := -1
	for _, s := range r.sections {
		if s.CourseID == courseID && s.Position > max {
			max = s.Position
		}
	}
	return max + 1, nil
}

func (r *fakeSectionRepo) UpdateSection(_ context.Context, s *model.Section) error {
	if _, ok := r.sections[s.ID]; !ok {
		return fmt.Errorf("section %s not found", s.ID)
	}
	cp := *s
	r.sections[s.ID] = &cp
	return nil
}

func (r *fakeSectionRepo) UpdatePosition(_ context.Context, courseID, sectionID string, position int) error {
	s, ok := r.sections[sectionID]
	if !ok || s.CourseID != courseID {
		return fmt.Errorf("section %s not found", sectionID)
	}
	s.Position = position
	return nil
}

func (r *fakeSectionRepo) SetSectionPublished(_ context.Context, courseID, sectionID string, published bool) error {
	s, ok := r.sections[sectionID]
	if !ok || s.CourseID != courseID {
		return fmt.Errorf("section %s not found", sectionID)
	}
	s.IsPublished = published
	return nil
}

func (r *fakeSectionRepo) CountPublished(_ context.Context, courseID string) (int, error) {
	count := 0
	for _, s := range r.sections {
		if s.CourseID == courseID && s.IsPublished {
			count++
		}
	}
	return count, nil
}

func (r *fakeSectionRepo) DeleteSection(_ context.Context, courseID, sectionID string) error {
	s, ok := r.sections[sectionID]
	if !ok || s.CourseID != courseID {
		return fmt.Errorf("section %s not found", sectionID)
	}
	delete(r.sections, sectionID)
	return nil
}

type fakeVideoAssetRepo struct {
	assets   map[string]*model.VideoAsset
	sections *fakeSectionRepo
	nextID   int
}

func newFakeVideoAssetRepo(sections *fakeSectionRepo) *fakeVideoAssetRepo {
	return &fakeVideoAssetRepo{assets: make(map[string]*model.VideoAsset), sections: sections}
}

func (r *fakeVideoAssetRepo) CreateVideoAsset(_ context.Context, a *model.VideoAsset) error {
	r.nextID++
	a.ID = fmt.Sprintf("video-asset-%d", r.nextID)
	cp := *a
	r.assets[a.ID] = &cp
	return nil
}

func (r *fakeVideoAssetRepo) GetVideoAssetBySectionID(_ context.Context, sectionID string) (*model.VideoAsset, error) {
	for _, a := range r.assets {
		if a.SectionID == sectionID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVideoAssetRepo) GetVideoAssetsByCourseID(ctx context.Context, courseID string) ([]model.VideoAsset, error) {
	var out []model.VideoAsset
	for _, a := range r.assets {
		s, ok := r.sections.sections[a.SectionID]
		if ok && s.CourseID == courseID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeVideoAssetRepo) DeleteVideoAsset(_ context.Context, id string) error {
	if _, ok := r.assets[id]; !ok {
		return fmt.Errorf("video asset %s not found", id)
	}
	delete(r.assets, id)
	return nil
}

type fakeResourceRepo struct {
	resources []model.Resource
	nextID    int
}

func (r *fakeResourceRepo) CreateResource(_ context.Context, res *model.Resource) error {
	r.nextID++
	res.ID = fmt.Sprintf("resource-%d", r.nextID)
	r.resources = append(r.resources, *res)
	return nil
}

func (r *fakeResourceRepo) GetResourcesBySectionID(_ context.Context, sectionID string) ([]model.Resource, error) {
	var out []model.Resource
	for _, res := range r.resources {
		if res.SectionID == sectionID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResourceRepo) DeleteResource(_ context.Context, sectionID, resourceID string) (bool, error) {
	for i, res := range r.resources {
		if res.ID == resourceID && res.SectionID == sectionID {
			r.resources = append(r.resources[:i], r.resources[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeVideoHost records asset lifecycle calls instead of talking to a host.
type fakeVideoHost struct {
	created   []string
	deleted   []string
	deleteErr error
	nextID    int
}

func (h *fakeVideoHost) CreateAsset(_ context.Context, videoURL string) (*VideoAssetInfo, error) {
	h.nextID++
	h.created = append(h.created, videoURL)
	return &VideoAssetInfo{
		AssetID:    fmt.Sprintf("remote-asset-%d", h.nextID),
		PlaybackID: fmt.Sprintf("playback-%d", h.nextID),
	}, nil
}

func (h *fakeVideoHost) DeleteAsset(_ context.Context, assetID string) error {
	if h.deleteErr != nil {
		return h.deleteErr
	}
	h.deleted = append(h.deleted, assetID)
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func strPtr(s string) *string { return &s }

// completeCourse returns a course satisfying every descriptive requirement.
// Tests knock out individual fields to exercise the publish gate.
func completeCourse(id, instructorID string) *model.Course {
	return &model.Course{
		ID:            id,
		InstructorID:  instructorID,
		Title:         "Advanced PostgreSQL",
		Description:   "Indexes, planners, and everything in between",
		ImageURL:      "https://cdn.example.com/images/pg.png",
		Price:         49.99,
		CategoryID:    strPtr("cat-1"),
		SubCategoryID: strPtr("subcat-1"),
		LevelID:       strPtr("level-1"),
	}
}
