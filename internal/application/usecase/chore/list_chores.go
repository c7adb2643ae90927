package chore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// ListChoresInput represents the input for listing chores. A non-empty
// KidUsername lists the kid's own chores (optionally narrowed to one goal);
// otherwise ParentID lists the parent's chores with optional kid/status
// filters. Archived chores are excluded either way.
type ListChoresInput struct {
	KidUsername string
	GoalID      *uuid.UUID

	ParentID     uuid.UUID
	FilterKid    string
	FilterStatus string
}

// ListChoresOutput represents the output of listing chores.
type ListChoresOutput struct {
	Chores []*entity.Chore
}

// ListChoresUseCase lists active chores for the authenticated user.
type ListChoresUseCase struct {
	choreRepo adapter.ChoreRepository
}

// NewListChoresUseCase creates a new ListChoresUseCase instance.
func NewListChoresUseCase(choreRepo adapter.ChoreRepository) *ListChoresUseCase {
	return &ListChoresUseCase{choreRepo: choreRepo}
}

// Execute retrieves the matching chores, newest first.
func (uc *ListChoresUseCase) Execute(ctx context.Context, input ListChoresInput) (*ListChoresOutput, error) {
	var filter adapter.ChoreFilter
	if input.KidUsername != "" {
		filter.KidUsername = input.KidUsername
		filter.AssignedGoalID = input.GoalID
	} else {
		parentID := input.ParentID
		filter.ParentID = &parentID
		filter.KidUsername = input.FilterKid
		filter.Status = entity.ChoreStatus(input.FilterStatus)
	}

	chores, err := uc.choreRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}

	return &ListChoresOutput{Chores: chores}, nil
}
