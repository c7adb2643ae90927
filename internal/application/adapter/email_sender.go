// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing outbound emails.
type EmailService interface {
	// QueueOTPEmail queues a one-time code email.
	QueueOTPEmail(ctx context.Context, input QueueOTPEmailInput) error

	// QueueGoalEventEmail queues a goal lifecycle email (approved, completed).
	QueueGoalEventEmail(ctx context.Context, input QueueGoalEventInput) error
}

// QueueOTPEmailInput represents the input for queueing an OTP email.
type QueueOTPEmailInput struct {
	Email     string
	Name      string
	Code      string
	Purpose   string
	ExpiresIn string
}

// QueueGoalEventInput represents the input for queueing a goal event email.
type QueueGoalEventInput struct {
	Email     string
	Name      string
	KidName   string
	GoalTitle string
	Amount    string
	Event     string // "approved" or "completed"
}
