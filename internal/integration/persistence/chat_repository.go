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

// chatRepository implements the adapter.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository instance.
func NewChatRepository(db *gorm.DB) adapter.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Create creates a new chat session.
func (r *chatRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	sessionModel := model.ChatSessionFromEntity(session)
	result := r.db.WithContext(ctx).Create(sessionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a session owned by the given email.
func (r *chatRepository) FindByID(ctx context.Context, id uuid.UUID, ownerEmail string) (*entity.ChatSession, error) {
	var sessionModel model.ChatSessionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_email = ?", id, ownerEmail).
		First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChatSessionNotFound
		}
		return nil, result.Error
	}
	return sessionModel.ToEntity(), nil
}

// FindByOwner retrieves the owner's sessions, most recently updated first.
func (r *chatRepository) FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.ChatSession, error) {
	var sessionModels []model.ChatSessionModel
	result := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("updated_at DESC").
		Find(&sessionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sessions := make([]*entity.ChatSession, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = sessionModels[i].ToEntity()
	}
	return sessions, nil
}

// Update saves changes to a session.
func (r *chatRepository) Update(ctx context.Context, session *entity.ChatSession) error {
	sessionModel := model.ChatSessionFromEntity(session)
	result := r.db.WithContext(ctx).Save(sessionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrChatSessionNotFound
	}
	return nil
}

// Delete removes a session owned by the given email.
func (r *chatRepository) Delete(ctx context.Context, id uuid.UUID, ownerEmail string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_email = ?", id, ownerEmail).
		Delete(&model.ChatSessionModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
