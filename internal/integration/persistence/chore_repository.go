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

// choreRepository implements the adapter.ChoreRepository interface.
type choreRepository struct {
	db *gorm.DB
}

// NewChoreRepository creates a new chore repository instance.
func NewChoreRepository(db *gorm.DB) adapter.ChoreRepository {
	return &choreRepository{
		db: db,
	}
}

// Create creates a new chore in the database.
func (r *choreRepository) Create(ctx context.Context, chore *entity.Chore) error {
	choreModel := model.ChoreFromEntity(chore)
	result := r.db.WithContext(ctx).Create(choreModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a chore by its ID.
func (r *choreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chore, error) {
	var choreModel model.ChoreModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&choreModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChoreNotFound
		}
		return nil, result.Error
	}
	return choreModel.ToEntity(), nil
}

// FindByIDs retrieves the chores with the given IDs. Missing ids are silently
// skipped.
func (r *choreRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Chore, error) {
	if len(ids) == 0 {
		return []*entity.Chore{}, nil
	}
	var choreModels []model.ChoreModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&choreModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return choresToEntities(choreModels), nil
}

// List retrieves chores matching the filter, newest first.
func (r *choreRepository) List(ctx context.Context, filter adapter.ChoreFilter) ([]*entity.Chore, error) {
	query := r.db.WithContext(ctx).Model(&model.ChoreModel{})

	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.ChildID != nil {
		query = query.Where("child_id = ?", *filter.ChildID)
	}
	if filter.KidUsername != "" {
		query = query.Where("kid_username = ?", filter.KidUsername)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.AssignedGoalID != nil {
		query = query.Where("assigned_goal_id = ?", *filter.AssignedGoalID)
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var choreModels []model.ChoreModel
	result := query.Order("created_at DESC").Find(&choreModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return choresToEntities(choreModels), nil
}

// FindByGoal retrieves chores claimed by the goal, excluding archived and
// pending_approval ones.
func (r *choreRepository) FindByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.Chore, error) {
	var choreModels []model.ChoreModel
	result := r.db.WithContext(ctx).
		Where("assigned_goal_id = ? AND is_active = ? AND status NOT IN ?",
			goalID, true,
			[]string{string(entity.ChoreStatusArchived), string(entity.ChoreStatusPendingApproval)}).
		Order("created_at DESC").
		Find(&choreModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return choresToEntities(choreModels), nil
}

// Update updates an existing chore in the database.
func (r *choreRepository) Update(ctx context.Context, chore *entity.Chore) error {
	choreModel := model.ChoreFromEntity(chore)
	result := r.db.WithContext(ctx).Save(choreModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrChoreNotFound
	}
	return nil
}

// Delete removes a chore owned by the parent.
func (r *choreRepository) Delete(ctx context.Context, id, parentID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND parent_id = ?", id, parentID).
		Delete(&model.ChoreModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountSelectable counts the kid's chores still available for goal work.
func (r *choreRepository) CountSelectable(ctx context.Context, kidUsername string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ChoreModel{}).
		Where("kid_username = ? AND status = ? AND is_active = ? AND assigned_goal_id IS NULL",
			kidUsername, string(entity.ChoreStatusAssigned), true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func choresToEntities(choreModels []model.ChoreModel) []*entity.Chore {
	chores := make([]*entity.Chore, len(choreModels))
	for i := range choreModels {
		chores[i] = choreModels[i].ToEntity()
	}
	return chores
}
