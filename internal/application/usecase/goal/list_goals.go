// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// ListGoalsInput represents the input for listing a kid's goals.
type ListGoalsInput struct {
	KidUsername string
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase lists all goals belonging to a kid.
type ListGoalsUseCase struct {
	goalRepo  adapter.GoalRepository
	childRepo adapter.ChildRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, childRepo adapter.ChildRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:  goalRepo,
		childRepo: childRepo,
	}
}

// Execute retrieves the kid's goals, newest first.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	child, err := uc.childRepo.FindByUsername(ctx, input.KidUsername)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	goals, err := uc.goalRepo.FindByChild(ctx, child.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return &ListGoalsOutput{Goals: goals}, nil
}
