package errors

import (
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "2.1")

	if got := err.Error(); got != "task '2.1' not found" {
		t.Errorf("Error() = %q", got)
	}
	if !Is(err, ErrTaskNotFound) {
		t.Error("should match ErrTaskNotFound")
	}
	if Is(err, ErrPlanNotFound) {
		t.Error("task not-found should not match ErrPlanNotFound")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should report true")
	}
	if IsValidation(err) {
		t.Error("IsValidation should report false")
	}
}

func TestNotFoundError_PlanSentinel(t *testing.T) {
	err := NewNotFoundError("plan", "sample")
	if !Is(err, ErrPlanNotFound) {
		t.Error("should match ErrPlanNotFound")
	}
}

func TestNotFoundError_WithCause(t *testing.T) {
	cause := New("disk on fire")
	err := NewNotFoundError("plan", "sample").WithCause(cause)

	if !Is(err, cause) {
		t.Error("should unwrap to the cause")
	}
	if got := err.Error(); got != "plan 'sample' not found: disk on fire" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNotFoundError_WrappedThroughFmt(t *testing.T) {
	err := fmt.Errorf("load plan: %w", NewNotFoundError("plan", "sample"))

	if !IsNotFound(err) {
		t.Error("IsNotFound should see through wrapping")
	}
	if !Is(err, ErrPlanNotFound) {
		t.Error("sentinel match should see through wrapping")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("status", "finished", "unknown status value")

	if !IsValidation(err) {
		t.Error("IsValidation should report true")
	}
	if !Is(err, ErrInvalidStatus) {
		t.Error("status validation should match ErrInvalidStatus")
	}
	if IsNotFound(err) {
		t.Error("IsNotFound should report false")
	}

	other := NewValidationError("priority", "soon", "not a number")
	if Is(other, ErrInvalidStatus) {
		t.Error("non-status validation should not match ErrInvalidStatus")
	}
}

func TestValidationError_MessageFormat(t *testing.T) {
	err := NewValidationError("status", "finished", "unknown status value")
	want := "validation failed for status: unknown status value (got: finished)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := NewValidationError("", nil, "something went wrong")
	if got := bare.Error(); got != "validation failed: something went wrong" {
		t.Errorf("Error() = %q", got)
	}
}
