package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// DeclineGoalInput represents the input for goal decline.
type DeclineGoalInput struct {
	GoalID   uuid.UUID
	ParentID uuid.UUID
}

// DeclineGoalOutput represents the output of goal decline.
type DeclineGoalOutput struct {
	Goal *entity.Goal
}

// DeclineGoalUseCase declines a pending goal. Declining an already declined
// goal is a no-op success so a double-tap on the notification card does not
// surface an error.
type DeclineGoalUseCase struct {
	goalRepo         adapter.GoalRepository
	notificationRepo adapter.NotificationRepository
}

// NewDeclineGoalUseCase creates a new DeclineGoalUseCase instance.
func NewDeclineGoalUseCase(goalRepo adapter.GoalRepository, notificationRepo adapter.NotificationRepository) *DeclineGoalUseCase {
	return &DeclineGoalUseCase{
		goalRepo:         goalRepo,
		notificationRepo: notificationRepo,
	}
}

// Execute performs the decline.
func (uc *DeclineGoalUseCase) Execute(ctx context.Context, input DeclineGoalInput) (*DeclineGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if g.ParentID != input.ParentID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal belongs to another family",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if g.Status == entity.GoalStatusDeclined {
		return &DeclineGoalOutput{Goal: g}, nil
	}

	if g.Status != entity.GoalStatusPendingApproval {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotPending,
			"goal is not pending approval",
			domainerror.ErrGoalNotPending,
		)
	}

	g.Status = entity.GoalStatusDeclined
	g.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to decline goal: %w", err)
	}

	if err := uc.notificationRepo.ResolveByGoal(ctx, g.ID, entity.NotificationStatusDeclined); err != nil {
		return nil, fmt.Errorf("failed to resolve notifications: %w", err)
	}

	return &DeclineGoalOutput{Goal: g}, nil
}
