package service

import (
	"reflect"
	"testing"

	"app/internal/model"
)

func TestEvaluateCourseComplete(t *testing.T) {
	course := completeCourse("course-1", "instructor-1")
	report := EvaluateCourse(course, true)

	if !report.IsComplete {
		t.Fatalf("expected complete course, missing: %v", report.MissingFields)
	}
	if report.RequiredCount != 8 {
		t.Errorf("expected 8 required fields, got %d", report.RequiredCount)
	}
	if report.MissingCount != 0 {
		t.Errorf("expected 0 missing fields, got %d", report.MissingCount)
	}
}

func TestEvaluateCourseEmpty(t *testing.T) {
	report := EvaluateCourse(&model.Course{}, false)

	if report.IsComplete {
		t.Fatal("expected empty course to be incomplete")
	}
	want := []string{
		"title", "description", "category_id", "sub_category_id",
		"image_url", "level_id", "price", "published_section",
	}
	if !reflect.DeepEqual(report.MissingFields, want) {
		t.Errorf("missing fields = %v, want %v", report.MissingFields, want)
	}
	if report.MissingCount != len(want) {
		t.Errorf("missing count = %d, want %d", report.MissingCount, len(want))
	}
}

func TestEvaluateCourseZeroPrice(t *testing.T) {
	course := completeCourse("course-1", "instructor-1")
	course.Price = 0
	report := EvaluateCourse(course, true)

	if report.IsComplete {
		t.Fatal("expected zero-price course to be incomplete")
	}
	if !reflect.DeepEqual(report.MissingFields, []string{"price"}) {
		t.Errorf("missing fields = %v, want [price]", report.MissingFields)
	}
}

func TestEvaluateCourseNoPublishedSection(t *testing.T) {
	course := completeCourse("course-1", "instructor-1")
	report := EvaluateCourse(course, false)

	if report.IsComplete {
		t.Fatal("expected course without published sections to be incomplete")
	}
	if !reflect.DeepEqual(report.MissingFields, []string{"published_section"}) {
		t.Errorf("missing fields = %v, want [published_section]", report.MissingFields)
	}
}

func TestEvaluateCourseEmptyCategoryRef(t *testing.T) {
	course := completeCourse("course-1", "instructor-1")
	course.CategoryID = strPtr("")
	report := EvaluateCourse(course, true)

	// A pointer to an empty string counts as unset, same as a nil pointer.
	if !reflect.DeepEqual(report.MissingFields, []string{"category_id"}) {
		t.Errorf("missing fields = %v, want [category_id]", report.MissingFields)
	}
}

func TestEvaluateSection(t *testing.T) {
	tests := []struct {
		name    string
		section model.Section
		missing []string
	}{
		{
			name: "complete",
			section: model.Section{
				Title:       "Intro",
				Description: "What the course covers",
				VideoURL:    "https://cdn.example.com/videos/intro.mp4",
			},
			missing: []string{},
		},
		{
			name:    "empty",
			section: model.Section{},
			missing: []string{"title", "description", "video_url"},
		},
		{
			name: "no video",
			section: model.Section{
				Title:       "Intro",
				Description: "What the course covers",
			},
			missing: []string{"video_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := EvaluateSection(&tt.section)
			if !reflect.DeepEqual(report.MissingFields, tt.missing) {
				t.Errorf("missing fields = %v, want %v", report.MissingFields, tt.missing)
			}
			if report.IsComplete != (len(tt.missing) == 0) {
				t.Errorf("IsComplete = %v with missing %v", report.IsComplete, report.MissingFields)
			}
			if report.RequiredCount != 3 {
				t.Errorf("expected 3 required fields, got %d", report.RequiredCount)
			}
		})
	}
}
