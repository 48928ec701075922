package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError carries a field -> message map. The operation it
// aborted never reached the database.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return fmt.Sprintf("validation failed: %s %s", field, msg)
	}
	return "validation failed"
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// GuardError is a referential-guard rejection: the entity still has
// dependents, so the delete was refused with a human-readable reason.
type GuardError struct {
	Reason string
}

func (e *GuardError) Error() string {
	return e.Reason
}
