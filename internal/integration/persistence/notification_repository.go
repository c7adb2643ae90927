// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create creates a new notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a notification by its ID.
func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&notificationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNotificationNotFound
		}
		return nil, result.Error
	}
	return notificationModel.ToEntity(), nil
}

// FindByRecipient retrieves the most recent notifications for the recipient.
func (r *notificationRepository) FindByRecipient(ctx context.Context, recipientEmail string, limit int) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("recipient_email = ?", recipientEmail).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = notificationModels[i].ToEntity()
	}
	return notifications, nil
}

// CountUnread counts unread notifications for the recipient.
func (r *notificationRepository) CountUnread(ctx context.Context, recipientEmail string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("recipient_email = ? AND read = ?", recipientEmail, false).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// MarkRead marks a single notification as read for the recipient.
func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, recipientEmail string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_email = ?", id, recipientEmail).
		Update("read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// MarkAllRead marks all of the recipient's notifications as read.
func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientEmail string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("recipient_email = ? AND read = ?", recipientEmail, false).
		Update("read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ResolveByGoal updates the status of all notifications tied to a goal.
func (r *notificationRepository) ResolveByGoal(ctx context.Context, goalID uuid.UUID, status entity.NotificationStatus) error {
	result := r.db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("goal_id = ?", goalID).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a notification.
func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NotificationModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteBySubmission removes the notifications tied to a progress submission.
func (r *notificationRepository) DeleteBySubmission(ctx context.Context, submissionID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
