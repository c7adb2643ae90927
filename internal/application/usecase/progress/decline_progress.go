package progress

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

// DeclineProgressInput represents the input for declining a submission.
type DeclineProgressInput struct {
	SubmissionID uuid.UUID
	ParentID     uuid.UUID
	ParentEmail  string
}

// DeclineProgressOutput represents the output of declining a submission.
type DeclineProgressOutput struct {
	KidID              string
	GoalID             uuid.UUID
	ReassignedChoreIDs []string
}

// DeclineProgressUseCase rejects a reviewed submission: exactly the submitted
// chores still awaiting review go back to assigned so the kid can redo them.
type DeclineProgressUseCase struct {
	progressRepo     adapter.ProgressRepository
	goalRepo         adapter.GoalRepository
	choreRepo        adapter.ChoreRepository
	childRepo        adapter.ChildRepository
	notificationRepo adapter.NotificationRepository
	logger           *slog.Logger
}

// NewDeclineProgressUseCase creates a new DeclineProgressUseCase instance.
func NewDeclineProgressUseCase(
	progressRepo adapter.ProgressRepository,
	goalRepo adapter.GoalRepository,
	choreRepo adapter.ChoreRepository,
	childRepo adapter.ChildRepository,
	notificationRepo adapter.NotificationRepository,
	logger *slog.Logger,
) *DeclineProgressUseCase {
	return &DeclineProgressUseCase{
		progressRepo:     progressRepo,
		goalRepo:         goalRepo,
		choreRepo:        choreRepo,
		childRepo:        childRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Execute performs the decline.
func (uc *DeclineProgressUseCase) Execute(ctx context.Context, input DeclineProgressInput) (*DeclineProgressOutput, error) {
	submission, err := uc.progressRepo.FindByID(ctx, input.SubmissionID)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeSubmissionNotFound,
			"submission not found",
			domainerror.ErrSubmissionNotFound,
		)
	}
	if submission.ParentID != input.ParentID {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeUnauthorizedSubmissionAccess,
			"submission belongs to another family",
			domainerror.ErrUnauthorizedSubmissionAccess,
		)
	}
	if submission.Status != entity.SubmissionStatusPending {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeSubmissionNotPending,
			"submission already reviewed",
			domainerror.ErrSubmissionNotPending,
		)
	}

	g, err := uc.goalRepo.FindByID(ctx, submission.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	child, err := uc.childRepo.FindByID(ctx, submission.ChildID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	now := time.Now().UTC()
	reassigned, err := uc.reassignSubmittedChores(ctx, submission, input.ParentEmail, now)
	if err != nil {
		return nil, err
	}

	submission.Resolve(entity.SubmissionStatusDeclined, input.ParentEmail)
	if err := uc.progressRepo.Update(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to resolve submission: %w", err)
	}
	if err := uc.notificationRepo.DeleteBySubmission(ctx, submission.ID); err != nil {
		return nil, fmt.Errorf("failed to delete submission notification: %w", err)
	}

	n := entity.NewNotification(
		child.InboxAddress(),
		entity.NotificationProgressDeclined,
		"Try Again! 💪",
		fmt.Sprintf("Your parents want you to redo %d chore(s). They're ready for another try!", len(reassigned)),
		entity.NotificationStatusDeclined,
	)
	goalID := g.ID
	n.GoalID = &goalID
	n.KidUsername = child.Username
	n.CompletedChoreIDs = reassigned
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		uc.logger.Error("failed to create decline notification", "goal_id", g.ID, "error", err)
	}

	return &DeclineProgressOutput{
		KidID:              child.Username,
		GoalID:             g.ID,
		ReassignedChoreIDs: reassigned,
	}, nil
}

func (uc *DeclineProgressUseCase) reassignSubmittedChores(ctx context.Context, submission *entity.ProgressSubmission, declinedBy string, now time.Time) ([]string, error) {
	ids := make([]uuid.UUID, 0, len(submission.ChoreIDs))
	for _, raw := range submission.ChoreIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	chores, err := uc.choreRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load submitted chores: %w", err)
	}

	var reassigned []string
	for _, c := range chores {
		if c.Status != entity.ChoreStatusPendingApproval {
			continue
		}
		c.Status = entity.ChoreStatusAssigned
		c.SubmittedAt = nil
		c.DeclinedBy = declinedBy
		c.UpdatedAt = now
		if err := uc.choreRepo.Update(ctx, c); err != nil {
			return reassigned, fmt.Errorf("failed to reassign chore: %w", err)
		}
		reassigned = append(reassigned, c.ID.String())
	}
	return reassigned, nil
}
