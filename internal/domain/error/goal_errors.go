// Package error defines domain-specific errors for the AIDIY application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalNotPending is returned when approving or declining a goal that
	// already left the pending_approval state. Goal transitions are monotonic.
	ErrGoalNotPending = errors.New("goal is not pending approval")

	// ErrGoalNotApproved is returned when an operation requires an approved goal.
	ErrGoalNotApproved = errors.New("goal is not approved")

	// ErrUnauthorizedGoalAccess is returned when the caller does not own the goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrInvalidGoalAmount is returned when the target amount is zero or negative.
	ErrInvalidGoalAmount = errors.New("invalid goal amount")

	// ErrOnlyKidsCreateGoals is returned when a parent token attempts goal creation.
	ErrOnlyKidsCreateGoals = errors.New("only kids can create goals")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound      GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalAmount GoalErrorCode = "GOL-010002"
	ErrCodeMissingGoalFields GoalErrorCode = "GOL-010003"
	ErrCodeOnlyKidsCreate    GoalErrorCode = "GOL-010004"

	// Lifecycle errors (02XXXX)
	ErrCodeGoalNotPending         GoalErrorCode = "GOL-020001"
	ErrCodeGoalNotApproved        GoalErrorCode = "GOL-020002"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-020003"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
