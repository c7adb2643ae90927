package chore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// UpdateChoreInput represents the input for chore update. Nil fields are left
// untouched; only the listed fields are updatable.
type UpdateChoreInput struct {
	ChoreID     uuid.UUID
	ParentID    uuid.UUID
	Title       *string
	Description *string
	Category    *string
	Difficulty  *string
	Reward      *decimal.Decimal
	DueDate     *string
	Status      *string
	AssignedTo  *string
}

// UpdateChoreOutput represents the output of chore update.
type UpdateChoreOutput struct {
	Chore *entity.Chore
}

// UpdateChoreUseCase handles a parent editing one of their chores.
type UpdateChoreUseCase struct {
	choreRepo adapter.ChoreRepository
	childRepo adapter.ChildRepository
}

// NewUpdateChoreUseCase creates a new UpdateChoreUseCase instance.
func NewUpdateChoreUseCase(choreRepo adapter.ChoreRepository, childRepo adapter.ChildRepository) *UpdateChoreUseCase {
	return &UpdateChoreUseCase{
		choreRepo: choreRepo,
		childRepo: childRepo,
	}
}

// Execute applies the provided fields to the chore.
func (uc *UpdateChoreUseCase) Execute(ctx context.Context, input UpdateChoreInput) (*UpdateChoreOutput, error) {
	if input.Title == nil && input.Description == nil && input.Category == nil &&
		input.Difficulty == nil && input.Reward == nil && input.DueDate == nil &&
		input.Status == nil && input.AssignedTo == nil {
		return nil, domainerror.NewChoreError(
			domainerror.ErrCodeMissingChoreFields,
			"no valid fields to update",
			nil,
		)
	}

	c, err := uc.choreRepo.FindByID(ctx, input.ChoreID)
	if err != nil {
		return nil, domainerror.NewChoreError(
			domainerror.ErrCodeChoreNotFound,
			"chore not found",
			domainerror.ErrChoreNotFound,
		)
	}
	if c.ParentID != input.ParentID {
		return nil, domainerror.NewChoreError(
			domainerror.ErrCodeUnauthorizedChoreAccess,
			"chore belongs to another family",
			domainerror.ErrUnauthorizedChoreAccess,
		)
	}

	if input.Title != nil {
		c.Title = *input.Title
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.Category != nil {
		c.Category = *input.Category
	}
	if input.Difficulty != nil {
		c.Difficulty = entity.ChoreDifficulty(*input.Difficulty)
	}
	if input.Reward != nil {
		c.Reward = *input.Reward
	}
	if input.DueDate != nil {
		c.DueDate = *input.DueDate
	}
	if input.Status != nil {
		c.Status = entity.ChoreStatus(*input.Status)
	}
	if input.AssignedTo != nil {
		if err := uc.reassign(ctx, c, *input.AssignedTo); err != nil {
			return nil, err
		}
	}
	c.UpdatedAt = time.Now().UTC()

	if err := uc.choreRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update chore: %w", err)
	}

	return &UpdateChoreOutput{Chore: c}, nil
}

func (uc *UpdateChoreUseCase) reassign(ctx context.Context, c *entity.Chore, username string) error {
	if username == "" {
		c.KidUsername = ""
		c.ChildID = nil
		if c.Status == entity.ChoreStatusAssigned {
			c.Status = entity.ChoreStatusPending
		}
		return nil
	}

	child, err := uc.childRepo.FindByUsername(ctx, username)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeChildNotFound,
			"assignee not found",
			domainerror.ErrChildNotFound,
		)
	}
	if child.ParentID != c.ParentID {
		return domainerror.NewChoreError(
			domainerror.ErrCodeUnauthorizedChoreAccess,
			"assignee belongs to another family",
			domainerror.ErrUnauthorizedChoreAccess,
		)
	}

	c.KidUsername = child.Username
	id := child.ID
	c.ChildID = &id
	if c.Status == entity.ChoreStatusPending {
		c.Status = entity.ChoreStatusAssigned
	}
	return nil
}
