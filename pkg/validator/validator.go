package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/ghuser/itemregistry/pkg/httpx"
)

// Client-facing messages for rejected request bodies.
const (
	MsgMalformedBody    = "Malformed request body"
	MsgBodyTooLarge     = "Request body too large"
	MsgValidationFailed = "Validation failed"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("validator: register notblank: %v", err))
	}
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into field errors
// keyed by JSON name, in struct field order.
func FormatValidationErrors(err error) []httpx.FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]httpx.FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, httpx.FieldError{Field: e.Field(), Message: formatFieldError(e)})
	}
	return out
}

func formatFieldError(e validator.FieldError) string {
	name := e.StructField()
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "notblank":
		return name + " must not be blank"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", name, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, e.Param())
	default:
		return fmt.Sprintf("%s failed on '%s'", name, e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails:
//   - body over the size limit → 413
//   - unparseable JSON or wrong field types → 400 Malformed request body
//   - tag violations → 400 Validation failed with every field error
//
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, MsgMalformedBody)
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSONValidationError(w, MsgValidationFailed, FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}
