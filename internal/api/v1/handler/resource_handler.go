package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ResourceHandler handles section resource endpoints
type ResourceHandler struct {
	resourceService service.ResourceService
	validate        *validator.Validate
	logger          zerolog.Logger
}

// NewResourceHandler creates a new ResourceHandler
func NewResourceHandler(resourceService service.ResourceService, validate *validator.Validate, logger zerolog.Logger) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
		validate:        validate,
		logger:          logger.With().Str("handler", "ResourceHandler").Logger(),
	}
}

// RegisterRoutes mounts resource routes
func (h *ResourceHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /courses/{courseId}/sections/{sectionId}/resources", authMw(http.HandlerFunc(h.listResources)))
	mux.Handle("POST /courses/{courseId}/sections/{sectionId}/resources", authMw(http.HandlerFunc(h.addResource)))
	mux.Handle("DELETE /courses/{courseId}/sections/{sectionId}/resources/{resourceId}", authMw(http.HandlerFunc(h.removeResource)))
}

// listResources godoc
// @Summary List a section's resources in insertion order
// @Tags resources
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {array} dto.ResourceResponseDTO
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId}/resources [get]
func (h *ResourceHandler) listResources(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	resources, err := h.resourceService.ListResources(r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	resp := make([]dto.ResourceResponseDTO, 0, len(resources))
	for i := range resources {
		resp = append(resp, dto.NewResourceResponse(&resources[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// addResource godoc
// @Summary Attach a downloadable file to a section
// @Tags resources
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Param resource body dto.ResourceCreateDTO true "Resource attachment request"
// @Success 201 {object} dto.ResourceResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId}/resources [post]
func (h *ResourceHandler) addResource(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	var req dto.ResourceCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	resource, err := h.resourceService.AddResource(
		r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId"), req.Name, req.FileURL)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewResourceResponse(resource))
}

// removeResource godoc
// @Summary Detach a resource from a section
// @Tags resources
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Param resourceId path string true "Resource ID"
// @Success 200 {string} string "Resource Deleted"
// @Failure 404 {string} string "Not Found"
// @Router /courses/{courseId}/sections/{sectionId}/resources/{resourceId} [delete]
func (h *ResourceHandler) removeResource(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	err := h.resourceService.RemoveResource(
		r.Context(), userID, r.PathValue("courseId"), r.PathValue("sectionId"), r.PathValue("resourceId"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Resource Deleted"})
}
