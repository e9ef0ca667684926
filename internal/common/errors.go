// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidConfig indicates a configuration value could not be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports every violated constraint of a malformed command.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// NewValidationError creates a validation error from a list of violations.
func NewValidationError(violations []string) error {
	return &ValidationError{Violations: violations}
}

// NotFoundError identifies which referenced entity was missing.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// PersistenceError wraps a failed repository call with operation context.
type PersistenceError struct {
	Err error
	Op  string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps a repository failure with its operation name.
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
