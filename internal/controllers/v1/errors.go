package v1

import (
	"errors"
	"net/http"

	"github.com/invoicelens/backend/internal/models"
)

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Invoice errors
var errInvoiceSortInvalid = errors.New("the specified sort order is invalid")
