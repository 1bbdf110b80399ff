package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// fakeCourseService returns canned results so the tests can focus on routing,
// request decoding and error mapping.
type fakeCourseService struct {
	course     *model.Course
	err        error
	gotTitle   string
	gotUserID  string
	gotCourse  string
	gotPatched *model.Course
}

func (f *fakeCourseService) CreateCourse(_ context.Context, instructorID, title string, categoryID, subCategoryID *string) (*model.Course, error) {
	f.gotUserID = instructorID
	f.gotTitle = title
	return f.course, f.err
}

func (f *fakeCourseService) GetCourse(_ context.Context, instructorID, courseID string) (*model.Course, error) {
	f.gotUserID = instructorID
	f.gotCourse = courseID
	return f.course, f.err
}

func (f *fakeCourseService) ListCourses(_ context.Context, instructorID string) ([]model.Course, error) {
	f.gotUserID = instructorID
	if f.course == nil {
		return nil, f.err
	}
	return []model.Course{*f.course}, f.err
}

func (f *fakeCourseService) UpdateCourse(_ context.Context, instructorID string, c *model.Course) (*model.Course, error) {
	f.gotPatched = c
	return c, f.err
}

func (f *fakeCourseService) DeleteCourse(_ context.Context, instructorID, courseID string) error {
	f.gotCourse = courseID
	return f.err
}

func (f *fakeCourseService) Completeness(_ context.Context, instructorID, courseID string) (*service.CompletenessReport, error) {
	return &service.CompletenessReport{RequiredCount: 8, MissingFields: []string{}}, f.err
}

func (f *fakeCourseService) PublishCourse(_ context.Context, instructorID, courseID string) (*model.Course, error) {
	return f.course, f.err
}

func (f *fakeCourseService) UnpublishCourse(_ context.Context, instructorID, courseID string) (*model.Course, error) {
	return f.course, f.err
}

// stubAuth injects a fixed instructor ID, standing in for the JWT middleware.
func stubAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.UserContextKey, "instructor-1")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newCourseMux(svc service.CourseService) *http.ServeMux {
	validate := validator.New(validator.WithRequiredStructEnabled())
	h := NewCourseHandler(svc, validate, zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, stubAuth)
	return mux
}

func TestCreateCourseHandler(t *testing.T) {
	svc := &fakeCourseService{course: &model.Course{ID: "course-1", InstructorID: "instructor-1", Title: "Go Basics"}}
	mux := newCourseMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{"title":"Go Basics"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	if svc.gotUserID != "instructor-1" {
		t.Errorf("instructor = %q, want instructor-1", svc.gotUserID)
	}
	if svc.gotTitle != "Go Basics" {
		t.Errorf("title = %q, want Go Basics", svc.gotTitle)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["course_id"] != "course-1" {
		t.Errorf("course_id = %v", resp["course_id"])
	}
}

func TestCreateCourseHandlerRejectsMissingTitle(t *testing.T) {
	svc := &fakeCourseService{}
	mux := newCourseMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if svc.gotTitle != "" {
		t.Error("service must not be called on validation failure")
	}
}

func TestGetCourseHandlerNotFound(t *testing.T) {
	svc := &fakeCourseService{err: service.ErrNotFound}
	mux := newCourseMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/courses/course-404", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if svc.gotCourse != "course-404" {
		t.Errorf("course id = %q, want course-404", svc.gotCourse)
	}
}

func TestPublishCourseHandlerValidationError(t *testing.T) {
	svc := &fakeCourseService{err: &service.ValidationError{Missing: []string{"price", "published_section"}}}
	mux := newCourseMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/courses/course-1/publish", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		MissingFields []string `json:"missing_fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.MissingFields) != 2 {
		t.Errorf("missing_fields = %v, want 2 entries", resp.MissingFields)
	}
}

func TestUpdateCourseHandlerPatchesFields(t *testing.T) {
	svc := &fakeCourseService{course: &model.Course{ID: "course-1", InstructorID: "instructor-1", Title: "Old", Price: 10}}
	mux := newCourseMux(svc)

	req := httptest.NewRequest(http.MethodPatch, "/courses/course-1", strings.NewReader(`{"title":"New","price":25.5}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if svc.gotPatched == nil {
		t.Fatal("UpdateCourse was not called")
	}
	if svc.gotPatched.Title != "New" || svc.gotPatched.Price != 25.5 {
		t.Errorf("patched course = %+v", svc.gotPatched)
	}
}
