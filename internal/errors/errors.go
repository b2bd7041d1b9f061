// Package errors provides centralized error definitions and error handling
// utilities for planloom. It defines sentinel errors for the plan and task
// domain, semantic error types, and classification helpers.
//
// Creating errors:
//
//	err := errors.NewNotFoundError("task", "2.1")
//	err := errors.NewValidationError("status", "finished", "unknown status value")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrTaskNotFound) { ... }
//
//	var nf *errors.NotFoundError
//	if errors.As(err, &nf) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Plan and task sentinel errors.
var (
	// ErrPlanNotFound indicates that a plan document could not be found.
	ErrPlanNotFound = New("plan not found")
	// ErrTaskNotFound indicates that a task could not be found in a plan.
	ErrTaskNotFound = New("task not found")
	// ErrInvalidStatus indicates that a status value is not recognized.
	ErrInvalidStatus = New("invalid status")
	// ErrDependencyCycle indicates a circular dependency between tasks.
	ErrDependencyCycle = New("dependency cycle detected")
	// ErrPlanLocked indicates that a plan is locked by another process.
	ErrPlanLocked = New("plan is locked")
)

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("task", "2.1")
//	fmt.Println(err) // "task '2.1' not found"
type NotFoundError struct {
	ResourceType string
	ResourceID   string
	cause        error
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Unwrap returns the underlying error, if any.
func (e *NotFoundError) Unwrap() error {
	return e.cause
}

// Is matches any NotFoundError as well as the domain sentinels, so
// errors.Is(err, ErrTaskNotFound) works for a NotFoundError with
// resource type "task".
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	switch target {
	case ErrTaskNotFound:
		return e.ResourceType == "task"
	case ErrPlanNotFound:
		return e.ResourceType == "plan"
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// ValidationError represents invalid input or state.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is matches any ValidationError, and ErrInvalidStatus for status fields.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return target == ErrInvalidStatus && e.Field == "status"
}

// IsNotFound returns true if the error represents a missing resource.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return As(err, &nf)
}

// IsValidation returns true if the error represents invalid input.
func IsValidation(err error) bool {
	var ve *ValidationError
	return As(err, &ve)
}
