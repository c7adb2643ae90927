// Package progress contains the weekly progress submission and review use cases.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/domain/valueobject"
)

// GetProgressViewInput represents the input for the weekly progress view.
// SelectedChoreIDs defaults to the ids recorded on the goal when empty.
type GetProgressViewInput struct {
	KidUsername      string
	GoalID           uuid.UUID
	SelectedChoreIDs []string
	Now              time.Time
}

// GetProgressViewOutput is the server-computed weekly progress view.
type GetProgressViewOutput struct {
	Goal   *entity.Goal
	View   valueobject.ProgressView
	Chores []valueobject.QuestChore
}

// GetProgressViewUseCase reconciles the kid's selected chore batch against
// current server state and computes the explicit view state the client
// renders.
type GetProgressViewUseCase struct {
	goalRepo  adapter.GoalRepository
	choreRepo adapter.ChoreRepository
	childRepo adapter.ChildRepository
}

// NewGetProgressViewUseCase creates a new GetProgressViewUseCase instance.
func NewGetProgressViewUseCase(
	goalRepo adapter.GoalRepository,
	choreRepo adapter.ChoreRepository,
	childRepo adapter.ChildRepository,
) *GetProgressViewUseCase {
	return &GetProgressViewUseCase{
		goalRepo:  goalRepo,
		choreRepo: choreRepo,
		childRepo: childRepo,
	}
}

// Execute computes the view.
func (uc *GetProgressViewUseCase) Execute(ctx context.Context, input GetProgressViewInput) (*GetProgressViewOutput, error) {
	child, err := uc.childRepo.FindByUsername(ctx, input.KidUsername)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	if g.ChildID != child.ID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal belongs to another kid",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	// The active list excludes archived and pending-approval chores; the
	// reconciler locks the view while any selected chore is absent from it.
	current, err := uc.choreRepo.FindByGoal(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goal chores: %w", err)
	}

	selected := input.SelectedChoreIDs
	if len(selected) == 0 {
		selected = g.AssignedChoreIDs
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	out := &GetProgressViewOutput{
		Goal: g,
		View: valueobject.ReconcileProgress(g, selected, current, now),
	}
	for _, c := range current {
		out.Chores = append(out.Chores, valueobject.DecorateChore(c))
	}
	return out, nil
}
