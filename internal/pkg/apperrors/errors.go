// FILE: internal/pkg/apperrors/errors.go
// Error taxonomy shared by services, managers and the HTTP layer.
// Controllers translate these into HTTP status codes; services never
// leak raw storage errors to callers.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FieldError describes a single invalid field inside a request.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates every field problem found in one request so
// the operator can fix them all in a single round trip.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// Collector accumulates field errors during a bulk validation pass.
type Collector struct {
	fields []FieldError
}

// Add records a field error.
func (c *Collector) Add(field, reason string) {
	c.fields = append(c.fields, FieldError{Field: field, Reason: reason})
}

// Addf records a field error with a formatted reason.
func (c *Collector) Addf(field, format string, args ...interface{}) {
	c.Add(field, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any field error was recorded.
func (c *Collector) HasErrors() bool {
	return len(c.fields) > 0
}

// Err returns the aggregate ValidationError, or nil when nothing was
// collected. Fields are sorted by field name for deterministic output.
func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	sorted := make([]FieldError, len(c.fields))
	copy(sorted, c.fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Field < sorted[j].Field
	})
	return &ValidationError{Fields: sorted}
}

// NotFoundError indicates a referenced id does not exist.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.Id)
}

// NewNotFoundError creates a NotFoundError for a resource/id pair.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, Id: id}
}

// ConflictError indicates an operation is blocked by a live reference,
// e.g. deleting a feature still attached to a plan assignment.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NewConflictError creates a ConflictError with the given reason.
func NewConflictError(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a storage-layer failure. It is surfaced as-is and
// never retried automatically: writes are not safe to blindly replay
// without re-validation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// WrapPersistence wraps err into a PersistenceError unless it already is
// part of the taxonomy. A nil err returns nil.
func WrapPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	var nfe *NotFoundError
	var ce *ConflictError
	var pe *PersistenceError
	if errors.As(err, &ve) || errors.As(err, &nfe) || errors.As(err, &ce) || errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
