// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation. Only kids propose
// goals; the caller resolves the kid from the authenticated token.
type CreateGoalInput struct {
	KidUsername   string
	Title         string
	Description   string
	Category      string
	Amount        decimal.Decimal
	DurationWeeks int
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles a kid proposing a new savings goal.
type CreateGoalUseCase struct {
	goalRepo         adapter.GoalRepository
	childRepo        adapter.ChildRepository
	notificationRepo adapter.NotificationRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(
	goalRepo adapter.GoalRepository,
	childRepo adapter.ChildRepository,
	notificationRepo adapter.NotificationRepository,
) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:         goalRepo,
		childRepo:        childRepo,
		notificationRepo: notificationRepo,
	}
}

// Execute persists the pending goal and notifies the parent.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"goal amount must be greater than zero",
			domainerror.ErrInvalidGoalAmount,
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

	g := entity.NewGoal(
		child.ID,
		child.ParentID,
		input.Title,
		input.Description,
		input.Category,
		input.Amount,
		input.DurationWeeks,
		child.DisplayName(),
		child.Avatar,
	)

	if err := uc.goalRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	// Notify the parent that a proposal awaits review.
	n := entity.NewNotification(
		child.ParentEmail,
		entity.NotificationGoalApprovalRequest,
		fmt.Sprintf("%s wants to save $%s", child.DisplayName(), input.Amount.StringFixed(2)),
		fmt.Sprintf("for %s", input.Title),
		entity.NotificationStatusPending,
	)
	n.GoalID = &g.ID
	n.KidUsername = child.Username
	n.KidName = child.DisplayName()
	n.KidAvatar = child.Avatar
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create approval notification: %w", err)
	}

	return &CreateGoalOutput{Goal: g}, nil
}
