package v1

import (
	"errors"
	"net/http"

	"github.com/ligaoffice/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no invoice matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
