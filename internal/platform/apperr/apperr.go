// Package apperr defines the typed errors shared by the service layer.
// Handlers map them to HTTP status codes; repositories and services return
// them so callers can branch on error kind with errors.As.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError indicates the caller supplied invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Validation builds a ValidationError for the given field.
func Validation(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates the requested entity does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// NotFound builds a NotFoundError for the given entity and lookup key.
func NotFound(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// ConflictError indicates the operation conflicts with existing state, such
// as an alias already registered to a different biomarker.
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Message)
}

// Conflict builds a ConflictError.
func Conflict(entity, format string, args ...interface{}) *ConflictError {
	return &ConflictError{Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus maps an error to the HTTP status code a handler should return.
// Wrapped errors are unwrapped with errors.As. Unknown errors map to 500.
func HTTPStatus(err error) int {
	var (
		ve *ValidationError
		nf *NotFoundError
		ce *ConflictError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ce):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
