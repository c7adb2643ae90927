package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/domain/valueobject"
)

// SubmitProgressInput represents the input for a progress submission.
type SubmitProgressInput struct {
	KidUsername    string
	GoalID         uuid.UUID
	ChoreIDs       []uuid.UUID
	SubmissionDate time.Time
}

// SubmitProgressOutput represents the output of a progress submission.
type SubmitProgressOutput struct {
	Submission *entity.ProgressSubmission
}

// SubmitProgressUseCase records a batch of completed chores for parent
// review. The earned total is always recomputed from the chore records, keyed
// by chore id; client-supplied totals are never trusted. All validation runs
// before the first write so a rejected submission leaves state untouched.
type SubmitProgressUseCase struct {
	goalRepo         adapter.GoalRepository
	choreRepo        adapter.ChoreRepository
	childRepo        adapter.ChildRepository
	progressRepo     adapter.ProgressRepository
	notificationRepo adapter.NotificationRepository
}

// NewSubmitProgressUseCase creates a new SubmitProgressUseCase instance.
func NewSubmitProgressUseCase(
	goalRepo adapter.GoalRepository,
	choreRepo adapter.ChoreRepository,
	childRepo adapter.ChildRepository,
	progressRepo adapter.ProgressRepository,
	notificationRepo adapter.NotificationRepository,
) *SubmitProgressUseCase {
	return &SubmitProgressUseCase{
		goalRepo:         goalRepo,
		choreRepo:        choreRepo,
		childRepo:        childRepo,
		progressRepo:     progressRepo,
		notificationRepo: notificationRepo,
	}
}

// Execute validates and records the submission.
func (uc *SubmitProgressUseCase) Execute(ctx context.Context, input SubmitProgressInput) (*SubmitProgressOutput, error) {
	if len(input.ChoreIDs) == 0 {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeEmptySubmission,
			"at least one completed chore is required",
			domainerror.ErrEmptySubmission,
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

	now := time.Now().UTC()
	if valueobject.ComputeDeadline(g.CreatedAt, g.DurationWeeks, now).Passed {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeDeadlinePassed,
			"goal deadline has passed",
			domainerror.ErrDeadlinePassed,
		)
	}

	chores, err := uc.choreRepo.FindByIDs(ctx, input.ChoreIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load chores: %w", err)
	}
	if len(chores) != len(input.ChoreIDs) {
		return nil, domainerror.NewChoreError(
			domainerror.ErrCodeChoreNotFound,
			"submission references an unknown chore",
			domainerror.ErrChoreNotFound,
		)
	}

	totalEarned := decimal.Zero
	choreIDs := make([]string, 0, len(chores))
	for _, c := range chores {
		if c.AssignedGoalID == nil || *c.AssignedGoalID != g.ID ||
			(c.Status != entity.ChoreStatusAssigned && c.Status != entity.ChoreStatusPending) {
			return nil, domainerror.NewChoreError(
				domainerror.ErrCodeChoreNotSubmittable,
				fmt.Sprintf("chore %q cannot be submitted", c.Title),
				domainerror.ErrChoreNotSubmittable,
			)
		}
		totalEarned = totalEarned.Add(c.Reward)
		choreIDs = append(choreIDs, c.ID.String())
	}

	submissionDate := input.SubmissionDate
	if submissionDate.IsZero() {
		submissionDate = now
	}
	submission := entity.NewProgressSubmission(g.ID, child.ID, child.ParentID, choreIDs, totalEarned, submissionDate)
	if err := uc.progressRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	for _, c := range chores {
		c.Status = entity.ChoreStatusPendingApproval
		submitted := now
		c.SubmittedAt = &submitted
		c.UpdatedAt = now
		if err := uc.choreRepo.Update(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to mark chore pending approval: %w", err)
		}
	}

	n := entity.NewNotification(
		child.ParentEmail,
		entity.NotificationProgressSubmission,
		fmt.Sprintf("%s completed chores!", child.DisplayName()),
		fmt.Sprintf("Your child completed %d chore(s) and earned $%s", len(chores), totalEarned.StringFixed(2)),
		entity.NotificationStatusPending,
	)
	goalID := g.ID
	submissionID := submission.ID
	n.GoalID = &goalID
	n.SubmissionID = &submissionID
	n.KidUsername = child.Username
	n.KidName = child.DisplayName()
	n.KidAvatar = child.Avatar
	n.EarnedAmount = totalEarned
	n.CompletedChoreIDs = choreIDs
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create submission notification: %w", err)
	}

	return &SubmitProgressOutput{Submission: submission}, nil
}
