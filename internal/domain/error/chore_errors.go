// Package error defines domain-specific errors for the AIDIY application.
package error

import "errors"

// Chore domain errors.
var (
	// ErrChoreNotFound is returned when a chore is not found in the system.
	ErrChoreNotFound = errors.New("chore not found")

	// ErrChoreAlreadyClaimed is returned when assigning a chore that is
	// already claimed by a different active goal.
	ErrChoreAlreadyClaimed = errors.New("chore already assigned to another goal")

	// ErrChoreNotSubmittable is returned when submitting progress for a chore
	// that is not in a submittable state.
	ErrChoreNotSubmittable = errors.New("chore cannot be submitted")

	// ErrUnauthorizedChoreAccess is returned when the caller does not own the chore.
	ErrUnauthorizedChoreAccess = errors.New("unauthorized access to chore")

	// ErrNoChoresSelected is returned when an operation requires at least one chore.
	ErrNoChoresSelected = errors.New("no chores selected")
)

// ChoreErrorCode defines error codes for chore errors.
// Format: CHR-XXYYYY where XX is category and YYYY is specific error.
type ChoreErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeChoreNotFound      ChoreErrorCode = "CHR-010001"
	ErrCodeMissingChoreFields ChoreErrorCode = "CHR-010002"
	ErrCodeNoChoresSelected   ChoreErrorCode = "CHR-010003"

	// Assignment errors (02XXXX)
	ErrCodeChoreAlreadyClaimed     ChoreErrorCode = "CHR-020001"
	ErrCodeChoreNotSubmittable     ChoreErrorCode = "CHR-020002"
	ErrCodeUnauthorizedChoreAccess ChoreErrorCode = "CHR-020003"
)

// ChoreError represents a chore error with code and message.
type ChoreError struct {
	Code    ChoreErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChoreError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChoreError) Unwrap() error {
	return e.Err
}

// NewChoreError creates a new ChoreError with the given code and message.
func NewChoreError(code ChoreErrorCode, message string, err error) *ChoreError {
	return &ChoreError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
