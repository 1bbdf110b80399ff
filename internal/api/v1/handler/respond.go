package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/middleware"
	"app/internal/service"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps domain errors onto HTTP statuses: ErrNotFound to
// 404, ValidationError to 400 with the missing fields in the body, anything
// else to 500 with the detail kept in the logs.
func writeServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":          vErr.Error(),
			"missing_fields": vErr.Missing,
		})
	default:
		logger.Error().Err(err).Msg("Request failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// userIDOrAbort pulls the authenticated instructor from the context; the
// auth middleware guarantees it for registered routes, but defend anyway.
func userIDOrAbort(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}
