package notification

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
)

// UnreadCountInput represents the input for the unread badge count.
type UnreadCountInput struct {
	RecipientEmail string
}

// UnreadCountOutput represents the output of the unread badge count.
type UnreadCountOutput struct {
	Count int64
}

// UnreadCountUseCase counts unread notifications for the badge poll.
type UnreadCountUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewUnreadCountUseCase creates a new UnreadCountUseCase instance.
func NewUnreadCountUseCase(notificationRepo adapter.NotificationRepository) *UnreadCountUseCase {
	return &UnreadCountUseCase{notificationRepo: notificationRepo}
}

// Execute counts the recipient's unread notifications.
func (uc *UnreadCountUseCase) Execute(ctx context.Context, input UnreadCountInput) (*UnreadCountOutput, error) {
	count, err := uc.notificationRepo.CountUnread(ctx, input.RecipientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return &UnreadCountOutput{Count: count}, nil
}
