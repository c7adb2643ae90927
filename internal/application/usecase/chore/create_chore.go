// Package chore contains chore-related use cases.
package chore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// CreateChoreInput represents the input for chore creation. AssignedTo is the
// kid username the chore starts out assigned to; empty leaves it unassigned.
type CreateChoreInput struct {
	ParentID    uuid.UUID
	Title       string
	Description string
	Category    string
	Difficulty  string
	Reward      decimal.Decimal
	DueDate     string
	AssignedTo  string
}

// CreateChoreOutput represents the output of chore creation.
type CreateChoreOutput struct {
	Chore *entity.Chore
}

// CreateChoreUseCase handles a parent creating a chore.
type CreateChoreUseCase struct {
	choreRepo adapter.ChoreRepository
	childRepo adapter.ChildRepository
}

// NewCreateChoreUseCase creates a new CreateChoreUseCase instance.
func NewCreateChoreUseCase(choreRepo adapter.ChoreRepository, childRepo adapter.ChildRepository) *CreateChoreUseCase {
	return &CreateChoreUseCase{
		choreRepo: choreRepo,
		childRepo: childRepo,
	}
}

// Execute persists the chore, resolving the assignee when one is named.
func (uc *CreateChoreUseCase) Execute(ctx context.Context, input CreateChoreInput) (*CreateChoreOutput, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" ||
		input.Difficulty == "" || input.DueDate == "" || !input.Reward.IsPositive() {
		return nil, domainerror.NewChoreError(
			domainerror.ErrCodeMissingChoreFields,
			"missing required chore fields",
			nil,
		)
	}

	var childID *uuid.UUID
	if input.AssignedTo != "" {
		child, err := uc.childRepo.FindByUsername(ctx, input.AssignedTo)
		if err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeChildNotFound,
				"assignee not found",
				domainerror.ErrChildNotFound,
			)
		}
		if child.ParentID != input.ParentID {
			return nil, domainerror.NewChoreError(
				domainerror.ErrCodeUnauthorizedChoreAccess,
				"assignee belongs to another family",
				domainerror.ErrUnauthorizedChoreAccess,
			)
		}
		id := child.ID
		childID = &id
	}

	c := entity.NewChore(
		input.ParentID,
		childID,
		input.AssignedTo,
		input.Title,
		input.Description,
		input.Category,
		entity.ChoreDifficulty(input.Difficulty),
		input.Reward,
		input.DueDate,
	)

	if err := uc.choreRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create chore: %w", err)
	}

	return &CreateChoreOutput{Chore: c}, nil
}
