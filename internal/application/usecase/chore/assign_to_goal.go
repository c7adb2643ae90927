package chore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// AssignToGoalInput represents the input for claiming chores for a goal.
type AssignToGoalInput struct {
	KidUsername string
	GoalID      uuid.UUID
	ChoreIDs    []uuid.UUID
}

// AssignToGoalOutput represents the output of the assignment.
type AssignToGoalOutput struct {
	Goal     *entity.Goal
	Assigned []*entity.Chore
}

// AssignToGoalUseCase claims selected chores for an approved goal. A chore is
// claimed by at most one active goal; claiming for the same goal again is a
// no-op so re-launching a mission with overlapping picks succeeds.
type AssignToGoalUseCase struct {
	choreRepo adapter.ChoreRepository
	goalRepo  adapter.GoalRepository
	childRepo adapter.ChildRepository
}

// NewAssignToGoalUseCase creates a new AssignToGoalUseCase instance.
func NewAssignToGoalUseCase(
	choreRepo adapter.ChoreRepository,
	goalRepo adapter.GoalRepository,
	childRepo adapter.ChildRepository,
) *AssignToGoalUseCase {
	return &AssignToGoalUseCase{
		choreRepo: choreRepo,
		goalRepo:  goalRepo,
		childRepo: childRepo,
	}
}

// Execute claims the chores and records their ids on the goal.
func (uc *AssignToGoalUseCase) Execute(ctx context.Context, input AssignToGoalInput) (*AssignToGoalOutput, error) {
	if len(input.ChoreIDs) == 0 {
		return nil, domainerror.NewChoreError(
			domainerror.ErrCodeNoChoresSelected,
			"no chores selected",
			domainerror.ErrNoChoresSelected,
		)
	}

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
	if g.Status != entity.GoalStatusApproved {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotApproved,
			"goal is not approved",
			domainerror.ErrGoalNotApproved,
		)
	}

	chores, err := uc.choreRepo.FindByIDs(ctx, input.ChoreIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load chores: %w", err)
	}

	assigned := make([]*entity.Chore, 0, len(chores))
	for _, c := range chores {
		if c.AssignedGoalID != nil {
			if *c.AssignedGoalID == g.ID {
				assigned = append(assigned, c)
				continue
			}
			return nil, domainerror.NewChoreError(
				domainerror.ErrCodeChoreAlreadyClaimed,
				fmt.Sprintf("chore %q is already assigned to another goal", c.Title),
				domainerror.ErrChoreAlreadyClaimed,
			)
		}
		c.ClaimForGoal(g.ID)
		if c.KidUsername == "" {
			c.KidUsername = child.Username
			id := child.ID
			c.ChildID = &id
		}
		if err := uc.choreRepo.Update(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to assign chore: %w", err)
		}
		assigned = append(assigned, c)
	}

	// Record the claimed ids on the goal, keeping earlier claims.
	known := make(map[string]struct{}, len(g.AssignedChoreIDs))
	for _, id := range g.AssignedChoreIDs {
		known[id] = struct{}{}
	}
	for _, c := range assigned {
		if _, ok := known[c.ID.String()]; !ok {
			g.AssignedChoreIDs = append(g.AssignedChoreIDs, c.ID.String())
			known[c.ID.String()] = struct{}{}
		}
	}
	g.UpdatedAt = time.Now().UTC()
	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to record assignment on goal: %w", err)
	}

	return &AssignToGoalOutput{Goal: g, Assigned: assigned}, nil
}
