package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validate:      validate,
		logger:        logger.With().Str("handler", "CourseHandler").Logger(),
	}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /courses", authMw(http.HandlerFunc(h.createCourse)))
	mux.Handle("GET /courses", authMw(http.HandlerFunc(h.listCourses)))
	mux.Handle("GET /courses/{courseId}", authMw(http.HandlerFunc(h.getCourse)))
	mux.Handle("PATCH /courses/{courseId}", authMw(http.HandlerFunc(h.updateCourse)))
	mux.Handle("DELETE /courses/{courseId}", authMw(http.HandlerFunc(h.deleteCourse)))
	mux.Handle("GET /courses/{courseId}/completeness", authMw(http.HandlerFunc(h.courseCompleteness)))
	mux.Handle("POST /courses/{courseId}/publish", authMw(http.HandlerFunc(h.publishCourse)))
	mux.Handle("POST /courses/{courseId}/unpublish", authMw(http.HandlerFunc(h.unpublishCourse)))
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a draft course owned by the authenticated instructor.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.courseService.CreateCourse(r.Context(), userID, req.Title, req.CategoryID, req.SubCategoryID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewCourseResponse(created))
}

// listCourses godoc
// @Summary List the instructor's courses
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	courses, err := h.courseService.ListCourses(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for i := range courses {
		resp = append(resp, dto.NewCourseResponse(&courses[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// getCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	course, err := h.courseService.GetCourse(r.Context(), userID, r.PathValue("courseId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCourseResponse(course))
}

// updateCourse godoc
// @Summary Update a course
// @Description Applies a partial update to a course owned by the caller.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Course update request"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId} [patch]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	course, err := h.courseService.GetCourse(r.Context(), userID, r.PathValue("courseId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Subtitle != nil {
		course.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.ImageURL != nil {
		course.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.CategoryID != nil {
		course.CategoryID = req.CategoryID
	}
	if req.SubCategoryID != nil {
		course.SubCategoryID = req.SubCategoryID
	}
	if req.LevelID != nil {
		course.LevelID = req.LevelID
	}

	updated, err := h.courseService.UpdateCourse(r.Context(), userID, course)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCourseResponse(updated))
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Deletes the course after removing its video assets from the
// video host. Owned sections and resources are removed with it.
// @Tags courses
// @Param courseId path string true "Course ID"
// @Success 200 {string} string "Course Deleted"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	if err := h.courseService.DeleteCourse(r.Context(), userID, r.PathValue("courseId")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Course Deleted"})
}

// courseCompleteness godoc
// @Summary Report the course's completeness
// @Description Backs the banner above the course form: required field count,
// missing field count and whether the course can be published.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} service.CompletenessReport
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/completeness [get]
func (h *CourseHandler) courseCompleteness(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	report, err := h.courseService.Completeness(r.Context(), userID, r.PathValue("courseId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// publishCourse godoc
// @Summary Publish a course
// @Description Fails with 400 while any required field is missing or no
// section is published.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} map[string]any "Missing required fields"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/publish [post]
func (h *CourseHandler) publishCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	course, err := h.courseService.PublishCourse(r.Context(), userID, r.PathValue("courseId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCourseResponse(course))
}

// unpublishCourse godoc
// @Summary Unpublish a course
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/unpublish [post]
func (h *CourseHandler) unpublishCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	course, err := h.courseService.UnpublishCourse(r.Context(), userID, r.PathValue("courseId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCourseResponse(course))
}
