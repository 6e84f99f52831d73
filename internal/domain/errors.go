package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports malformed input to a mutating operation. The
// operation is aborted with no state change.
type ValidationError struct {
	Field   string // Offending field: "title", "estimatedHours", etc.
	Message string // Human-readable context
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// InvalidOperationError reports an operation applied to the wrong kind of
// task, e.g. a group join on an individual task. No state change.
type InvalidOperationError struct {
	Op     string // Operation: "assign", "toggle-membership", etc.
	TaskID string
	Reason string
}

func (e *InvalidOperationError) Error() string {
	if e.TaskID != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Op, e.TaskID, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// AnalysisError represents a failure in the AI analysis collaborator. It is
// absorbed at the collaborator boundary and converted into a fallback report;
// it never surfaces as a core fault.
type AnalysisError struct {
	Op      string // Operation: "workload", "product", "company", "chat"
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("analysis %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("analysis %s: %v", e.Op, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// StateError represents a failure reading or writing the persisted snapshot.
type StateError struct {
	Op   string // Operation: "load", "save"
	Path string
	Err  error
}

func (e *StateError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("state %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("state %s: %v", e.Op, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}
