// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// Update updates an existing user in the database.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := r.db.WithContext(ctx).Save(userModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrUserNotFound
	}
	return nil
}

// ExistsByEmail checks if a verified user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// pendingUserRepository implements the adapter.PendingUserRepository interface.
type pendingUserRepository struct {
	db *gorm.DB
}

// NewPendingUserRepository creates a new pending user repository instance.
func NewPendingUserRepository(db *gorm.DB) adapter.PendingUserRepository {
	return &pendingUserRepository{
		db: db,
	}
}

// Upsert creates or replaces the pending registration for the email. A user
// who registers twice before verifying keeps only their latest details.
func (r *pendingUserRepository) Upsert(ctx context.Context, pending *entity.PendingUser) error {
	pendingModel := model.PendingUserFromEntity(pending)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		UpdateAll: true,
	}).Create(pendingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByEmail retrieves a pending registration by email.
func (r *pendingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.PendingUser, error) {
	var pendingModel model.PendingUserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&pendingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPendingRegistrationMissing
		}
		return nil, result.Error
	}
	return pendingModel.ToEntity(), nil
}

// DeleteByEmail removes a pending registration.
func (r *pendingUserRepository) DeleteByEmail(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).Where("email = ?", email).Delete(&model.PendingUserModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
