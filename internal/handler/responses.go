package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/trottparts/garage-api/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgProfileNotFoundError      = "Profile not found"
	ErrMsgPartNotFoundError         = "Part not found"
	ErrMsgScooterNotFoundError      = "Scooter not found"
	ErrMsgGarageItemNotFoundError   = "Garage item not found"
	ErrMsgModificationNotFoundError = "Modification not found"
	ErrMsgNotGarageOwnerError       = "This garage item belongs to another user"
	ErrMsgInvalidPointsDeltaError   = "Points must be a positive amount"
	ErrMsgPointsCapExceededError    = "Points amount exceeds the per-call limit"
	ErrMsgNotesTooLongError         = "Text is too long"
	ErrMsgOrderItemInstalledError   = "This order item is already marked as installed"
	ErrMsgOrderAlreadyCreditedError = "This order has already been credited"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrPartNotFound):
		return http.StatusNotFound, ErrMsgPartNotFoundError
	case errors.Is(err, domain.ErrScooterNotFound):
		return http.StatusNotFound, ErrMsgScooterNotFoundError
	case errors.Is(err, domain.ErrGarageItemNotFound):
		return http.StatusNotFound, ErrMsgGarageItemNotFoundError
	case errors.Is(err, domain.ErrModificationNotFound):
		return http.StatusNotFound, ErrMsgModificationNotFoundError
	case errors.Is(err, domain.ErrNotGarageOwner):
		return http.StatusForbidden, ErrMsgNotGarageOwnerError
	case errors.Is(err, domain.ErrInvalidPointsDelta):
		return http.StatusBadRequest, ErrMsgInvalidPointsDeltaError
	case errors.Is(err, domain.ErrPointsCapExceeded):
		return http.StatusBadRequest, ErrMsgPointsCapExceededError
	case errors.Is(err, domain.ErrNotesTooLong):
		return http.StatusBadRequest, ErrMsgNotesTooLongError
	case errors.Is(err, domain.ErrOrderItemInstalled):
		return http.StatusConflict, ErrMsgOrderItemInstalledError
	case errors.Is(err, domain.ErrOrderAlreadyCredited):
		return http.StatusConflict, ErrMsgOrderAlreadyCreditedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs the raw error and sends the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Handler error", "error", err, "path", r.URL.Path)
	}
	respondError(w, status, message)
}
