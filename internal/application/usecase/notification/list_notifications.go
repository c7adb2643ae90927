// Package notification contains notification read-model use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// recentLimit caps how many notifications the panel shows.
const recentLimit = 20

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	RecipientEmail string
}

// ListNotificationsOutput carries the recent notifications and unread count.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int64
}

// ListNotificationsUseCase returns the recipient's most recent notifications,
// newest first, plus how many are unread.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo}
}

// Execute retrieves the notifications.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	notifications, err := uc.notificationRepo.FindByRecipient(ctx, input.RecipientEmail, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, input.RecipientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}
