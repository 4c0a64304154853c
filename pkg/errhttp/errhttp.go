// Package errhttp maps domain sentinel errors to HTTP responses.
// Add a case to WriteError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/itemregistry/pkg/httpx"
	"github.com/ghuser/itemregistry/pkg/telemetry"
	itemdomain "github.com/ghuser/itemregistry/services/item/domain"
)

// Client-facing messages for the mapped domain errors.
const (
	MsgItemNotFound     = "Item not found"
	MsgValidationFailed = "Validation failed"
)

var exposeInternal atomic.Bool

// ExposeInternalErrors controls whether 5xx responses carry the error text.
// Leave it off in production.
func ExposeInternalErrors(expose bool) { exposeInternal.Store(expose) }

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is/As so wrapped errors are matched correctly.
// Unrecognized errors become 500 and are reported to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *itemdomain.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.JSONValidationError(w, MsgValidationFailed, toFieldErrors(verr.Fields))
	case errors.Is(err, itemdomain.ErrValidationFailed):
		httpx.JSONValidationError(w, MsgValidationFailed, nil)
	case errors.Is(err, itemdomain.ErrItemNotFound):
		httpx.JSONError(w, http.StatusNotFound, MsgItemNotFound)
	default:
		telemetry.CaptureError(r, err)
		status := http.StatusInternalServerError
		httpx.JSONError(w, status, httpx.SafeError(err, status, !exposeInternal.Load()))
	}
}

func toFieldErrors(fields []itemdomain.FieldError) []httpx.FieldError {
	out := make([]httpx.FieldError, len(fields))
	for i, f := range fields {
		out[i] = httpx.FieldError{Field: f.Field, Message: f.Message}
	}
	return out
}
