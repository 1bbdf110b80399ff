package service

import "app/internal/model"

// CompletenessReport describes how close an entity is to being publishable.
// It backs the banner shown above the edit forms and the publish gate.
type CompletenessReport struct {
	RequiredCount int      `json:"required_count"`
	MissingCount  int      `json:"missing_count"`
	MissingFields []string `json:"missing_fields"`
	IsComplete    bool     `json:"is_complete"`
}

type fieldCheck struct {
	name string
	set  bool
}

func buildReport(checks []fieldCheck) CompletenessReport {
	report := CompletenessReport{
		RequiredCount: len(checks),
		MissingFields: []string{},
	}
	for _, c := range checks {
		if !c.set {
			report.MissingFields = append(report.MissingFields, c.name)
		}
	}
	report.MissingCount = len(report.MissingFields)
	report.IsComplete = report.MissingCount == 0
	return report
}

// priceIsSet treats a price of exactly 0 as not set. This is a deliberate
// policy: free courses cannot be published until a price is chosen.
func priceIsSet(price float64) bool {
	return price != 0
}

func refIsSet(id *string) bool {
	return id != nil && *id != ""
}

// EvaluateCourse computes the course's completeness. A course needs every
// descriptive field plus at least one published section before it can go
// live; hasPublishedSection is supplied by the caller from a section query.
func EvaluateCourse(c *model.Course, hasPublishedSection bool) CompletenessReport {
	return buildReport([]fieldCheck{
		{"title", c.Title != ""},
		{"description", c.Description != ""},
		{"category_id", refIsSet(c.CategoryID)},
		{"sub_category_id", refIsSet(c.SubCategoryID)},
		{"image_url", c.ImageURL != ""},
		{"level_id", refIsSet(c.LevelID)},
		{"price", priceIsSet(c.Price)},
		{"published_section", hasPublishedSection},
	})
}

// EvaluateSection computes the section's completeness.
func EvaluateSection(s *model.Section) CompletenessReport {
	return buildReport([]fieldCheck{
		{"title", s.Title != ""},
		{"description", s.Description != ""},
		{"video_url", s.VideoURL != ""},
	})
}
