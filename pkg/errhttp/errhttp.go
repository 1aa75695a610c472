// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/stockery/pkg/httpx"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; those get a
// fixed message because their text can carry driver or SQL detail that does
// not belong in a response body.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		httpx.JSONError(w, status, "internal server error")
		return
	}
	httpx.JSONError(w, status, err.Error())
}

func mapErrorToStatus(err error) int {
	var stockErr *invdomain.InsufficientStockError
	switch {
	case errors.Is(err, invdomain.ErrCategoryNotFound),
		errors.Is(err, invdomain.ErrItemNotFound),
		errors.Is(err, invdomain.ErrClientNotFound),
		errors.Is(err, invdomain.ErrOrderNotFound),
		errors.Is(err, invdomain.ErrOrderItemNotFound):
		return http.StatusNotFound // 404
	case errors.As(err, &stockErr),
		errors.Is(err, invdomain.ErrOrderIDMismatch):
		return http.StatusBadRequest // 400
	case errors.Is(err, invdomain.ErrInvalidName),
		errors.Is(err, invdomain.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, invdomain.ErrTxConflict):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}
