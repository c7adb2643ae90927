// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// ListParentGoalsInput represents the input for the parent's goal overview.
type ListParentGoalsInput struct {
	ParentID uuid.UUID
}

// ListParentGoalsOutput represents the output of the parent's goal overview.
type ListParentGoalsOutput struct {
	Goals []*entity.Goal
}

// ListParentGoalsUseCase lists all goals across the parent's children. The
// pending_approval subset is the parent's approval queue.
type ListParentGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListParentGoalsUseCase creates a new ListParentGoalsUseCase instance.
func NewListParentGoalsUseCase(goalRepo adapter.GoalRepository) *ListParentGoalsUseCase {
	return &ListParentGoalsUseCase{goalRepo: goalRepo}
}

// Execute retrieves the parent's children's goals, newest first.
func (uc *ListParentGoalsUseCase) Execute(ctx context.Context, input ListParentGoalsInput) (*ListParentGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parent goals: %w", err)
	}
	return &ListParentGoalsOutput{Goals: goals}, nil
}
