// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	// Create creates a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByRecipient retrieves the most recent notifications for the
	// recipient, newest first, limited to limit.
	FindByRecipient(ctx context.Context, recipientEmail string, limit int) ([]*entity.Notification, error)

	// CountUnread counts unread notifications for the recipient.
	CountUnread(ctx context.Context, recipientEmail string) (int64, error)

	// MarkRead marks a single notification as read for the recipient.
	// Returns the number of rows affected.
	MarkRead(ctx context.Context, id uuid.UUID, recipientEmail string) (int64, error)

	// MarkAllRead marks all of the recipient's notifications as read and
	// returns how many were updated.
	MarkAllRead(ctx context.Context, recipientEmail string) (int64, error)

	// ResolveByGoal updates the status of all notifications tied to a goal
	// (used when a goal is approved or declined).
	ResolveByGoal(ctx context.Context, goalID uuid.UUID, status entity.NotificationStatus) error

	// Delete removes a notification (processed progress submissions).
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBySubmission removes the notifications tied to a progress
	// submission once it has been reviewed.
	DeleteBySubmission(ctx context.Context, submissionID uuid.UUID) error
}
