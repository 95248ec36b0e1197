// Package handler implements the HTTP layer: request decoding and
// validation, the error-to-status mapping, and JSON responses.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/movielist/internal/apperror"
)

// errorResponse is the error body shape for every failed request.
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON sends a JSON response with the given status code. Headers and
// status must be written before the body.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to an HTTP status and a {"detail": ...}
// body. Unauthorized responses additionally carry WWW-Authenticate: Bearer.
//
// Unknown errors become a generic 500: raw error text can contain SQL or
// file paths and never belongs in a response body. The service layer has
// already logged the details.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
			w.Header().Set("WWW-Authenticate", "Bearer")
		}

		writeJSON(w, status, errorResponse{Detail: appErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Detail: "an internal error occurred",
	})
}
