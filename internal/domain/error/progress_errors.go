// Package error defines domain-specific errors for the AIDIY application.
package error

import "errors"

// Progress submission domain errors.
var (
	// ErrSubmissionNotFound is returned when a progress submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrSubmissionNotPending is returned when reviewing a submission that has
	// already been resolved.
	ErrSubmissionNotPending = errors.New("submission already reviewed")

	// ErrUnauthorizedSubmissionAccess is returned when the reviewer is not the
	// parent the submission was addressed to.
	ErrUnauthorizedSubmissionAccess = errors.New("unauthorized access to submission")

	// ErrEmptySubmission is returned when a batch contains no completed chores.
	ErrEmptySubmission = errors.New("at least one completed chore is required")

	// ErrDeadlinePassed is returned when submitting after the goal's time
	// window has lapsed.
	ErrDeadlinePassed = errors.New("goal deadline has passed")
)

// ProgressErrorCode defines error codes for progress submission errors.
// Format: PRG-XXYYYY where XX is category and YYYY is specific error.
type ProgressErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptySubmission       ProgressErrorCode = "PRG-010001"
	ErrCodeMissingProgressFields ProgressErrorCode = "PRG-010002"
	ErrCodeDeadlinePassed        ProgressErrorCode = "PRG-010003"

	// Review errors (02XXXX)
	ErrCodeSubmissionNotFound           ProgressErrorCode = "PRG-020001"
	ErrCodeSubmissionNotPending         ProgressErrorCode = "PRG-020002"
	ErrCodeUnauthorizedSubmissionAccess ProgressErrorCode = "PRG-020003"
)

// ProgressError represents a progress submission error with code and message.
type ProgressError struct {
	Code    ProgressErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProgressError) Unwrap() error {
	return e.Err
}

// NewProgressError creates a new ProgressError with the given code and message.
func NewProgressError(code ProgressErrorCode, message string, err error) *ProgressError {
	return &ProgressError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
