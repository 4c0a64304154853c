package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// FieldError is one field-level violation in an ErrorResponse.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message   string        `json:"message"`
	Errors    []FieldError  `json:"errors,omitempty"`
	Timestamp LocalDateTime `json:"timestamp"`
}

// now is the clock used for ErrorResponse timestamps.
var now = time.Now

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Created writes v with status 201 and a Location header.
func Created(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, v)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// JSONError writes a standard {"message", "timestamp"} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Message: message, Timestamp: LocalDateTime(now())})
}

// JSONValidationError writes a 400 response carrying every field violation.
func JSONValidationError(w http.ResponseWriter, message string, errs []FieldError) {
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Message:   message,
		Errors:    errs,
		Timestamp: LocalDateTime(now()),
	})
}

// SafeError returns the error message for client responses.
// In production (isProduction=true), internal server errors (5xx) are replaced
// with a generic message to avoid leaking implementation details.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
