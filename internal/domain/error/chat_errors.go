// Package error defines domain-specific errors for the AIDIY application.
package error

import "errors"

// Chat domain errors.
var (
	// ErrChatSessionNotFound is returned when a chat session is not found.
	ErrChatSessionNotFound = errors.New("chat session not found")

	// ErrAIUnavailable is returned when the AI backend is not configured.
	ErrAIUnavailable = errors.New("AI service unavailable")
)

// ChatErrorCode defines error codes for chat errors.
// Format: CHT-XXYYYY where XX is category and YYYY is specific error.
type ChatErrorCode string

const (
	ErrCodeChatSessionNotFound ChatErrorCode = "CHT-010001"
	ErrCodeChatTitleRequired   ChatErrorCode = "CHT-010002"
	ErrCodeEmptyChatMessage    ChatErrorCode = "CHT-010003"
	ErrCodeAIUnavailable       ChatErrorCode = "CHT-020001"
)

// ChatError represents a chat error with code and message.
type ChatError struct {
	Code    ChatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChatError) Unwrap() error {
	return e.Err
}

// NewChatError creates a new ChatError with the given code and message.
func NewChatError(code ChatErrorCode, message string, err error) *ChatError {
	return &ChatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
