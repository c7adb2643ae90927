// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// ApproveGoalInput represents the input for goal approval.
type ApproveGoalInput struct {
	GoalID      uuid.UUID
	ParentID    uuid.UUID
	ParentEmail string
}

// ApproveGoalOutput represents the output of goal approval.
type ApproveGoalOutput struct {
	Goal *entity.Goal
}

// ApproveGoalUseCase transitions a pending goal to approved. The deadline is
// not tracked client-side: the expiry sweeper picks the goal up once its
// window (created_at + duration weeks) lapses.
type ApproveGoalUseCase struct {
	goalRepo         adapter.GoalRepository
	childRepo        adapter.ChildRepository
	notificationRepo adapter.NotificationRepository
	emailService     adapter.EmailService
	logger           *slog.Logger
}

// NewApproveGoalUseCase creates a new ApproveGoalUseCase instance.
func NewApproveGoalUseCase(
	goalRepo adapter.GoalRepository,
	childRepo adapter.ChildRepository,
	notificationRepo adapter.NotificationRepository,
	emailService adapter.EmailService,
	logger *slog.Logger,
) *ApproveGoalUseCase {
	return &ApproveGoalUseCase{
		goalRepo:         goalRepo,
		childRepo:        childRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

// Execute performs the approval.
func (uc *ApproveGoalUseCase) Execute(ctx context.Context, input ApproveGoalInput) (*ApproveGoalOutput, error) {
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

	// Transitions are monotonic; only a pending goal can be approved.
	if g.Status != entity.GoalStatusPendingApproval {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotPending,
			"goal is not pending approval",
			domainerror.ErrGoalNotPending,
		)
	}

	now := time.Now().UTC()
	g.Status = entity.GoalStatusApproved
	g.ApprovedBy = input.ParentEmail
	g.ApprovedAt = &now
	g.UpdatedAt = now

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to approve goal: %w", err)
	}

	// Resolve the approval-request notifications rather than marking them read.
	if err := uc.notificationRepo.ResolveByGoal(ctx, g.ID, entity.NotificationStatusApproved); err != nil {
		return nil, fmt.Errorf("failed to resolve notifications: %w", err)
	}

	uc.queueApprovedEmail(ctx, g)

	return &ApproveGoalOutput{Goal: g}, nil
}

// queueApprovedEmail emails the kid's inbox about the approval. The approval
// already landed, so a queueing failure is logged and swallowed.
func (uc *ApproveGoalUseCase) queueApprovedEmail(ctx context.Context, g *entity.Goal) {
	child, err := uc.childRepo.FindByID(ctx, g.ChildID)
	if err != nil {
		uc.logger.Warn("failed to load child for approval email", "goal_id", g.ID, "error", err)
		return
	}

	err = uc.emailService.QueueGoalEventEmail(ctx, adapter.QueueGoalEventInput{
		Email:     child.ParentEmail,
		Name:      child.FirstName,
		KidName:   child.DisplayName(),
		GoalTitle: g.Title,
		Amount:    g.Amount.StringFixed(2),
		Event:     "approved",
	})
	if err != nil {
		uc.logger.Warn("failed to queue goal approved email", "goal_id", g.ID, "error", err)
	}
}
