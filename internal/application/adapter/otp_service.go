// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// OTPPurpose distinguishes why a code was issued.
type OTPPurpose string

const (
	// OTPPurposeVerify confirms a fresh registration.
	OTPPurposeVerify OTPPurpose = "verify"
	// OTPPurposeReset authorizes a password reset.
	OTPPurposeReset OTPPurpose = "reset"
)

// OTPService manages one-time codes: a single live code per email, a short
// TTL and a bounded attempt budget. Backed by Redis in production.
type OTPService interface {
	// Issue creates (or replaces) the code for the email and returns it.
	Issue(ctx context.Context, email string, purpose OTPPurpose) (string, error)

	// Verify checks the submitted code. On a mismatch it burns one attempt.
	// Returns the purpose the code was issued for.
	Verify(ctx context.Context, email, code string) (OTPPurpose, error)

	// MarkValidated flags a reset-purpose code as validated so the follow-up
	// password reset can proceed without re-presenting the code.
	MarkValidated(ctx context.Context, email string) error

	// IsValidated reports whether a validated reset code exists for the email.
	IsValidated(ctx context.Context, email string) (bool, error)

	// Clear removes any code state for the email.
	Clear(ctx context.Context, email string) error
}
