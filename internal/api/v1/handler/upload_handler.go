package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// UploadHandler issues presigned upload URLs against object storage
type UploadHandler struct {
	uploadService service.UploadService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService service.UploadService, validate *validator.Validate, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		validate:      validate,
		logger:        logger.With().Str("handler", "UploadHandler").Logger(),
	}
}

// RegisterRoutes mounts upload routes
func (h *UploadHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /uploads", authMw(http.HandlerFunc(h.createUpload)))
}

// createUpload godoc
// @Summary Request a presigned upload URL
// @Description The client PUTs the file to the returned URL and stores the
// public URL on the course or resource.
// @Tags uploads
// @Accept json
// @Produce json
// @Param upload body dto.UploadRequestDTO true "Upload request"
// @Success 201 {object} dto.UploadResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Router /uploads [post]
func (h *UploadHandler) createUpload(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDOrAbort(w, r); !ok {
		return
	}
	var req dto.UploadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	grant, err := h.uploadService.PresignUpload(r.Context(), req.Kind, req.Filename)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.UploadResponseDTO{
		Key:       grant.Key,
		UploadURL: grant.UploadURL,
		PublicURL: grant.PublicURL,
	})
}
