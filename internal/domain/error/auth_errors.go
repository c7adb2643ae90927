// Package error defines domain-specific errors for the AIDIY application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an already verified email.
	ErrEmailAlreadyExists = errors.New("email already verified")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrOTPNotFound is returned when no OTP has been issued for the email.
	ErrOTPNotFound = errors.New("no OTP found")

	// ErrOTPExpired is returned when the issued OTP has lapsed.
	ErrOTPExpired = errors.New("OTP expired")

	// ErrOTPMismatch is returned when the submitted code does not match.
	ErrOTPMismatch = errors.New("incorrect OTP")

	// ErrOTPTooManyAttempts is returned after the attempt budget is spent.
	ErrOTPTooManyAttempts = errors.New("too many OTP attempts")

	// ErrOTPNotValidated is returned when a password reset is attempted
	// without a previously validated reset OTP.
	ErrOTPNotValidated = errors.New("OTP not validated")

	// ErrPendingRegistrationMissing is returned when a verification OTP is
	// confirmed but the pending registration has disappeared.
	ErrPendingRegistrationMissing = errors.New("pending registration missing")

	// ErrChildNotFound is returned when a kid account is not found.
	ErrChildNotFound = errors.New("child not found")

	// ErrInvalidGoogleToken is returned when a Google ID token fails verification.
	ErrInvalidGoogleToken = errors.New("invalid Google token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists   AuthErrorCode = "AUTH-010001"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010002"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"
	ErrCodeChildNotFound      AuthErrorCode = "AUTH-020004"
	ErrCodeInvalidGoogleToken AuthErrorCode = "AUTH-020005"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	// OTP errors (04XXXX)
	ErrCodeOTPNotFound        AuthErrorCode = "AUTH-040001"
	ErrCodeOTPExpired         AuthErrorCode = "AUTH-040002"
	ErrCodeOTPMismatch        AuthErrorCode = "AUTH-040003"
	ErrCodeOTPTooManyAttempts AuthErrorCode = "AUTH-040004"
	ErrCodeOTPNotValidated    AuthErrorCode = "AUTH-040005"
	ErrCodePendingMissing     AuthErrorCode = "AUTH-040006"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
