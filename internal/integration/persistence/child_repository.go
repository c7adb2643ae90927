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

// childRepository implements the adapter.ChildRepository interface.
type childRepository struct {
	db *gorm.DB
}

// NewChildRepository creates a new child repository instance.
func NewChildRepository(db *gorm.DB) adapter.ChildRepository {
	return &childRepository{
		db: db,
	}
}

// Create creates a new child in the database.
func (r *childRepository) Create(ctx context.Context, child *entity.Child) error {
	childModel := model.ChildFromEntity(child)
	result := r.db.WithContext(ctx).Create(childModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a child by ID.
func (r *childRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	var childModel model.ChildModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&childModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChildNotFound
		}
		return nil, result.Error
	}
	return childModel.ToEntity(), nil
}

// FindByUsername retrieves a child by their unique username.
func (r *childRepository) FindByUsername(ctx context.Context, username string) (*entity.Child, error) {
	var childModel model.ChildModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&childModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChildNotFound
		}
		return nil, result.Error
	}
	return childModel.ToEntity(), nil
}

// FindByParent retrieves all children of a parent.
func (r *childRepository) FindByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error) {
	var childModels []model.ChildModel
	result := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&childModels)
	if result.Error != nil {
		return nil, result.Error
	}

	children := make([]*entity.Child, len(childModels))
	for i := range childModels {
		children[i] = childModels[i].ToEntity()
	}
	return children, nil
}

// Update updates an existing child in the database.
func (r *childRepository) Update(ctx context.Context, child *entity.Child) error {
	childModel := model.ChildFromEntity(child)
	result := r.db.WithContext(ctx).Save(childModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrChildNotFound
	}
	return nil
}

// ExistsByUsername checks whether the username is already taken.
func (r *childRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ChildModel{}).Where("username = ?", username).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
