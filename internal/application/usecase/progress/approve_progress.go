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

// ApproveProgressInput represents the input for approving a submission.
type ApproveProgressInput struct {
	SubmissionID uuid.UUID
	ParentID     uuid.UUID
	ParentEmail  string
}

// ApproveProgressOutput represents the output of approving a submission.
type ApproveProgressOutput struct {
	NewSaved           string
	NewProgress        float64
	GoalCompleted      bool
	ArchivedChores     int
	CanSelectNewChores bool
}

// ApproveProgressUseCase credits a reviewed submission to the goal. The
// credit is capped so saved never exceeds the target, and only chores still
// awaiting review are archived: a chore declined from another submission in
// the meantime is left alone.
type ApproveProgressUseCase struct {
	progressRepo     adapter.ProgressRepository
	goalRepo         adapter.GoalRepository
	choreRepo        adapter.ChoreRepository
	childRepo        adapter.ChildRepository
	notificationRepo adapter.NotificationRepository
	emailService     adapter.EmailService
	logger           *slog.Logger
}

// NewApproveProgressUseCase creates a new ApproveProgressUseCase instance.
func NewApproveProgressUseCase(
	progressRepo adapter.ProgressRepository,
	goalRepo adapter.GoalRepository,
	choreRepo adapter.ChoreRepository,
	childRepo adapter.ChildRepository,
	notificationRepo adapter.NotificationRepository,
	emailService adapter.EmailService,
	logger *slog.Logger,
) *ApproveProgressUseCase {
	return &ApproveProgressUseCase{
		progressRepo:     progressRepo,
		goalRepo:         goalRepo,
		choreRepo:        choreRepo,
		childRepo:        childRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

// Execute performs the approval.
func (uc *ApproveProgressUseCase) Execute(ctx context.Context, input ApproveProgressInput) (*ApproveProgressOutput, error) {
	submission, err := uc.loadPendingSubmission(ctx, input.SubmissionID, input.ParentID)
	if err != nil {
		return nil, err
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
	goalCompleted := g.Credit(submission.TotalEarned)
	if goalCompleted {
		g.Status = entity.GoalStatusCompleted
		g.CompletedAt = &now
	}
	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to credit goal: %w", err)
	}

	archived, err := uc.archiveSubmittedChores(ctx, submission, input.ParentEmail, now)
	if err != nil {
		return nil, err
	}

	submission.Resolve(entity.SubmissionStatusApproved, input.ParentEmail)
	if err := uc.progressRepo.Update(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to resolve submission: %w", err)
	}
	if err := uc.notificationRepo.DeleteBySubmission(ctx, submission.ID); err != nil {
		return nil, fmt.Errorf("failed to delete submission notification: %w", err)
	}

	remaining, err := uc.choreRepo.CountSelectable(ctx, child.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to count selectable chores: %w", err)
	}

	uc.notifyApproved(ctx, g, child, submission, goalCompleted)

	return &ApproveProgressOutput{
		NewSaved:           g.Saved.StringFixed(2),
		NewProgress:        g.Progress(),
		GoalCompleted:      goalCompleted,
		ArchivedChores:     archived,
		CanSelectNewChores: remaining > 0,
	}, nil
}

func (uc *ApproveProgressUseCase) loadPendingSubmission(ctx context.Context, id, parentID uuid.UUID) (*entity.ProgressSubmission, error) {
	submission, err := uc.progressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeSubmissionNotFound,
			"submission not found",
			domainerror.ErrSubmissionNotFound,
		)
	}
	if submission.ParentID != parentID {
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
	return submission, nil
}

func (uc *ApproveProgressUseCase) archiveSubmittedChores(ctx context.Context, submission *entity.ProgressSubmission, approvedBy string, now time.Time) (int, error) {
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
		return 0, fmt.Errorf("failed to load submitted chores: %w", err)
	}

	archived := 0
	for _, c := range chores {
		if c.Status != entity.ChoreStatusPendingApproval {
			continue
		}
		c.Status = entity.ChoreStatusArchived
		archivedAt := now
		c.ArchivedAt = &archivedAt
		c.ApprovedBy = approvedBy
		c.IsActive = false
		c.UpdatedAt = now
		if err := uc.choreRepo.Update(ctx, c); err != nil {
			return archived, fmt.Errorf("failed to archive chore: %w", err)
		}
		archived++
	}
	return archived, nil
}

func (uc *ApproveProgressUseCase) notifyApproved(ctx context.Context, g *entity.Goal, child *entity.Child, submission *entity.ProgressSubmission, goalCompleted bool) {
	goalID := g.ID

	kidNote := entity.NewNotification(
		child.InboxAddress(),
		entity.NotificationProgressApproved,
		"Progress Approved! 🎉",
		fmt.Sprintf("Your parents approved your progress! $%s has been added to your savings.", submission.TotalEarned.StringFixed(2)),
		entity.NotificationStatusSuccess,
	)
	kidNote.GoalID = &goalID
	kidNote.EarnedAmount = submission.TotalEarned
	uc.createNotification(ctx, kidNote)

	if !goalCompleted {
		return
	}

	parentNote := entity.NewNotification(
		child.ParentEmail,
		entity.NotificationGoalCompleted,
		fmt.Sprintf("%s completed their goal! 🎉", child.DisplayName()),
		fmt.Sprintf("Your child has successfully saved $%s for %s", g.Amount.StringFixed(2), g.Title),
		entity.NotificationStatusSuccess,
	)
	parentNote.GoalID = &goalID
	parentNote.KidUsername = child.Username
	parentNote.KidName = child.DisplayName()
	parentNote.KidAvatar = child.Avatar
	uc.createNotification(ctx, parentNote)

	kidCompletion := entity.NewNotification(
		child.InboxAddress(),
		entity.NotificationGoalCompleted,
		"🎊 GOAL ACHIEVED! 🎊",
		fmt.Sprintf("Congratulations! You've saved $%s for %s!", g.Amount.StringFixed(2), g.Title),
		entity.NotificationStatusSuccess,
	)
	kidCompletion.GoalID = &goalID
	uc.createNotification(ctx, kidCompletion)

	err := uc.emailService.QueueGoalEventEmail(ctx, adapter.QueueGoalEventInput{
		Email:     child.ParentEmail,
		Name:      child.FirstName,
		KidName:   child.DisplayName(),
		GoalTitle: g.Title,
		Amount:    g.Amount.StringFixed(2),
		Event:     "completed",
	})
	if err != nil {
		uc.logger.Warn("failed to queue goal completed email", "goal_id", g.ID, "error", err)
	}
}

// createNotification is best-effort: the credit already landed, a lost
// notification must not fail the request.
func (uc *ApproveProgressUseCase) createNotification(ctx context.Context, n *entity.Notification) {
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		uc.logger.Error("failed to create notification", "type", n.Type, "recipient", n.RecipientEmail, "error", err)
	}
}
