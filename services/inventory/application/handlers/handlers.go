// Package handlers contains the HTTP request handlers for the inventory API.
// Each handler decodes and validates its request with pkg/validator, delegates
// to the application services, and maps domain errors through pkg/errhttp.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockery/pkg/httpx"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// pathID parses the {id}-style URL parameter named param as a positive int64.
// Writes a 400 response and returns false when the parameter is not a valid id.
func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid "+param)
		return 0, false
	}
	return id, true
}
