package handler

import (
	"net/http"

	"app/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler serves the category and level lookup endpoints
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         zerolog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger.With().Str("handler", "CatalogHandler").Logger(),
	}
}

// RegisterRoutes mounts catalog routes. Lookups are reference data and sit
// behind auth like everything else under /v1.
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /categories", authMw(http.HandlerFunc(h.listCategories)))
	mux.Handle("GET /levels", authMw(http.HandlerFunc(h.listLevels)))
}

// listCategories godoc
// @Summary List categories with nested sub-categories
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// listLevels godoc
// @Summary List course levels
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Level
// @Router /levels [get]
func (h *CatalogHandler) listLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.catalogService.ListLevels(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, levels)
}
