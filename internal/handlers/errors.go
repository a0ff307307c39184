package handlers

import (
	"errors"
	"net/http"

	"github.com/peopleops/attrition/httpx"
	"github.com/peopleops/attrition/internal/services"
)

func isNotFound(err error) bool { return errors.Is(err, services.ErrNotFound) }

// writeServiceError maps service sentinels to the HTTP error taxonomy.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, services.ErrInvalidScore):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid_score", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "storage_error", nil)
	}
}
