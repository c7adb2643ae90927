package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// MarkReadInput represents the input for marking one notification read.
type MarkReadInput struct {
	NotificationID uuid.UUID
	RecipientEmail string
}

// MarkReadUseCase marks a single notification as read. The update is scoped
// to the recipient so one user cannot touch another's notifications.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: notificationRepo}
}

// Execute marks the notification read.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	affected, err := uc.notificationRepo.MarkRead(ctx, input.NotificationID, input.RecipientEmail)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if affected == 0 {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationNotFound,
			"notification not found",
			domainerror.ErrNotificationNotFound,
		)
	}
	return nil
}

// MarkAllReadInput represents the input for marking all notifications read.
type MarkAllReadInput struct {
	RecipientEmail string
}

// MarkAllReadOutput reports how many notifications were updated.
type MarkAllReadOutput struct {
	Updated int64
}

// MarkAllReadUseCase marks all of the recipient's notifications as read.
type MarkAllReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkAllReadUseCase creates a new MarkAllReadUseCase instance.
func NewMarkAllReadUseCase(notificationRepo adapter.NotificationRepository) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{notificationRepo: notificationRepo}
}

// Execute marks everything read.
func (uc *MarkAllReadUseCase) Execute(ctx context.Context, input MarkAllReadInput) (*MarkAllReadOutput, error) {
	updated, err := uc.notificationRepo.MarkAllRead(ctx, input.RecipientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return &MarkAllReadOutput{Updated: updated}, nil
}
