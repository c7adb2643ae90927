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

// progressRepository implements the adapter.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository instance.
func NewProgressRepository(db *gorm.DB) adapter.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// Create creates a new progress submission.
func (r *progressRepository) Create(ctx context.Context, submission *entity.ProgressSubmission) error {
	submissionModel := model.ProgressSubmissionFromEntity(submission)
	result := r.db.WithContext(ctx).Create(submissionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a submission by its ID.
func (r *progressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProgressSubmission, error) {
	var submissionModel model.ProgressSubmissionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&submissionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubmissionNotFound
		}
		return nil, result.Error
	}
	return submissionModel.ToEntity(), nil
}

// FindPendingByGoal retrieves pending submissions for a goal.
func (r *progressRepository) FindPendingByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.ProgressSubmission, error) {
	var submissionModels []model.ProgressSubmissionModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ? AND status = ?", goalID, string(entity.SubmissionStatusPending)).
		Order("created_at DESC").
		Find(&submissionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	submissions := make([]*entity.ProgressSubmission, len(submissionModels))
	for i := range submissionModels {
		submissions[i] = submissionModels[i].ToEntity()
	}
	return submissions, nil
}

// Update saves changes to a submission.
func (r *progressRepository) Update(ctx context.Context, submission *entity.ProgressSubmission) error {
	submissionModel := model.ProgressSubmissionFromEntity(submission)
	result := r.db.WithContext(ctx).Save(submissionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubmissionNotFound
	}
	return nil
}
