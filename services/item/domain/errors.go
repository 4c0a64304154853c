package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrValidationFailed indicates the item input violates one or more domain constraints.
	// The concrete error is a *ValidationError carrying the individual field errors.
	ErrValidationFailed = errors.New("validation failed")
)

// FieldError describes one violated constraint on a single input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field violation found for one input.
// errors.Is(err, ErrValidationFailed) reports true for it.
type ValidationError struct {
	Fields []FieldError
}

// Error joins the field messages after the sentinel text.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends a field violation.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns e as an error when it holds at least one violation, nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
