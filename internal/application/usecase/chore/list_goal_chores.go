package chore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// ListGoalChoresInput represents the input for listing a goal's chores.
type ListGoalChoresInput struct {
	GoalID uuid.UUID
}

// ListGoalChoresOutput represents the output of listing a goal's chores.
type ListGoalChoresOutput struct {
	Chores []*entity.Chore
}

// ListGoalChoresUseCase lists the chores currently claimed by a goal,
// excluding archived and pending-approval ones (those were consumed by an
// earlier submission cycle).
type ListGoalChoresUseCase struct {
	choreRepo adapter.ChoreRepository
}

// NewListGoalChoresUseCase creates a new ListGoalChoresUseCase instance.
func NewListGoalChoresUseCase(choreRepo adapter.ChoreRepository) *ListGoalChoresUseCase {
	return &ListGoalChoresUseCase{choreRepo: choreRepo}
}

// Execute retrieves the goal's active chores.
func (uc *ListGoalChoresUseCase) Execute(ctx context.Context, input ListGoalChoresInput) (*ListGoalChoresOutput, error) {
	chores, err := uc.choreRepo.FindByGoal(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goal chores: %w", err)
	}
	return &ListGoalChoresOutput{Chores: chores}, nil
}
