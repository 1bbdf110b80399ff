package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// SectionHandler handles section-related endpoints
type SectionHandler struct {
	sectionService service.SectionService
	validate       *validator.Validate
	logger         zerolog.Logger
}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler(sectionService service.SectionService, validate *validator.Validate, logger zerolog.Logger) *SectionHandler {
	return &SectionHandler{
		sectionService: sectionService,
		validate:       validate,
		logger:         logger.With().Str("handler", "SectionHandler").Logger(),
	}
}

// RegisterRoutes mounts section routes. "reorder" is registered before the
// {sectionId} wildcard so it never shadows a section named "reorder".
func (h *SectionHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /courses/{courseId}/sections", authMw(http.HandlerFunc(h.listSections)))
	mux.Handle("POST /courses/{courseId}/sections", authMw(http.HandlerFunc(h.createSection)))
	mux.Handle("PUT /courses/{courseId}/sections/reorder", authMw(http.HandlerFunc(h.reorderSections)))
	mux.Handle("GET /courses/{courseId}/sections/{sectionId}", authMw(http.HandlerFunc(h.getSection)))
	mux.Handle("PATCH /courses/{courseId}/sections/{sectionId}", authMw(http.HandlerFunc(h.updateSection)))
	mux.Handle("DELETE /courses/{courseId}/sections/{sectionId}", authMw(http.HandlerFunc(h.deleteSection)))
	mux.Handle("GET /courses/{courseId}/sections/{sectionId}/completeness", authMw(http.HandlerFunc(h.sectionCompleteness)))
	mux.Handle("POST /courses/{courseId}/sections/{sectionId}/publish", authMw(http.HandlerFunc(h.publishSection)))
	mux.Handle("POST /courses/{courseId}/sections/{sectionId}/unpublish", authMw(http.HandlerFunc(h.unpublishSection)))
}

// listSections godoc
// @Summary List a course's sections ordered by position
// @Tags sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} dto.SectionResponseDTO
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections [get]
func (h *SectionHandler) listSections(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	sections, err := h.sectionService.ListSections(r.Context(), userID, r.PathValue("courseId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	resp := make([]dto.SectionResponseDTO, 0, len(sections))
	for i := range sections {
		resp = append(resp, dto.NewSectionResponse(&sections[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// createSection godoc
// @Summary Append a new section to a course
// @Description The section takes the next free position: max(position)+1,
// or 0 when the course has no sections yet.
// @Tags sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param section body dto.SectionCreateDTO true "Section creation request"
// @Success 201 {object} dto.SectionResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections [post]
func (h *SectionHandler) createSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	var req dto.SectionCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	section, err := h.sectionService.CreateSection(r.Context(), userID, r.PathValue("courseId"), req.Title)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewSectionResponse(section))
}

// reorderSections godoc
// @Summary Reorder a course's sections
// @Description Writes the submitted positions one by one. Every id must
// belong to the course; the payload may cover a subset of sections.
// @Tags sections
// @Accept json
// @Param courseId path string true "Course ID"
// @Param order body dto.SectionReorderDTO true "Desired ordering"
// @Success 200 {string} string "Reorder Successful"
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/reorder [put]
func (h *SectionHandler) reorderSections(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	var req dto.SectionReorderDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	items := make([]model.SectionPosition, 0, len(req.List))
	for _, item := range req.List {
		items = append(items, model.SectionPosition{ID: item.ID, Position: item.Position})
	}

	if err := h.sectionService.Reorder(r.Context(), userID, r.PathValue("courseId"), items); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reorder Successful"})
}

// getSection godoc
// @Summary Get a section
// @Tags sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} dto.SectionResponseDTO
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId} [get]
func (h *SectionHandler) getSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	section, err := h.sectionService.GetSection(r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewSectionResponse(section))
}

// updateSection godoc
// @Summary Update a section
// @Description Applies a partial update. Changing the video URL replaces the
// section's asset at the video host.
// @Tags sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Param section body dto.SectionUpdateDTO true "Section update request"
// @Success 200 {object} dto.SectionResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId} [patch]
func (h *SectionHandler) updateSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	var req dto.SectionUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	section, err := h.sectionService.UpdateSection(
		r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId"),
		service.SectionUpdate{
			Title:       req.Title,
			Description: req.Description,
			VideoURL:    req.VideoURL,
			IsFree:      req.IsFree,
		})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewSectionResponse(section))
}

// deleteSection godoc
// @Summary Delete a section
// @Description Removes the section and its video asset; unpublishes the
// course when no published section remains.
// @Tags sections
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {string} string "Section Deleted"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId} [delete]
func (h *SectionHandler) deleteSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	if err := h.sectionService.DeleteSection(r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Section Deleted"})
}

// sectionCompleteness godoc
// @Summary Report the section's completeness
// @Tags sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} service.CompletenessReport
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId}/completeness [get]
func (h *SectionHandler) sectionCompleteness(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	report, err := h.sectionService.Completeness(r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// publishSection godoc
// @Summary Publish a section
// @Description Requires title, description, video URL and an ingested video
// asset.
// @Tags sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} dto.SectionResponseDTO
// @Failure 400 {object} map[string]any "Missing required fields"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId}/publish [post]
func (h *SectionHandler) publishSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	section, err := h.sectionService.PublishSection(r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewSectionResponse(section))
}

// unpublishSection godoc
// @Summary Unpublish a section
// @Description Unpublishing the course's last published section also
// unpublishes the course.
// @Tags sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} dto.SectionResponseDTO
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId}/unpublish [post]
func (h *SectionHandler) unpublishSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	section, err := h.sectionService.UnpublishSection(r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewSectionResponse(section))
}
