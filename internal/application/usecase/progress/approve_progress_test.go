package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

type reviewFixture struct {
	progressRepo     *fakeProgressRepo
	goalRepo         *fakeGoalRepo
	choreRepo        *fakeChoreRepo
	childRepo        *fakeChildRepo
	notificationRepo *fakeNotificationRepo
	emailService     *fakeEmailService

	parentID   uuid.UUID
	child      *entity.Child
	goal       *entity.Goal
	chores     []*entity.Chore
	submission *entity.ProgressSubmission
}

// newReviewFixture seeds an approved goal with two submitted chores and a
// pending submission covering both.
func newReviewFixture(goalAmount, goalSaved int64, rewards ...int64) *reviewFixture {
	f := &reviewFixture{
		progressRepo:     newFakeProgressRepo(),
		goalRepo:         newFakeGoalRepo(),
		choreRepo:        newFakeChoreRepo(),
		childRepo:        newFakeChildRepo(),
		notificationRepo: newFakeNotificationRepo(),
		emailService:     newFakeEmailService(),
		parentID:         uuid.New(),
	}

	f.child = entity.NewChild(f.parentID, "parent@example.com", "emma", "Emma", "", "🦊", "2015-06-01", "hash")
	f.childRepo.Create(context.Background(), f.child)

	f.goal = entity.NewGoal(f.child.ID, f.parentID, "Skateboard", "", "Sports", decimal.NewFromInt(goalAmount), 4, "Emma", "🦊")
	f.goal.Status = entity.GoalStatusApproved
	f.goal.Saved = decimal.NewFromInt(goalSaved)

	now := time.Now().UTC()
	total := decimal.Zero
	var choreIDs []string
	for _, reward := range rewards {
		kidID := f.child.ID
		c := entity.NewChore(f.parentID, &kidID, "emma", "Chore", "", "Cleaning", entity.ChoreDifficultyEasy, decimal.NewFromInt(reward), "")
		c.ClaimForGoal(f.goal.ID)
		c.Status = entity.ChoreStatusPendingApproval
		c.SubmittedAt = &now
		f.choreRepo.Create(context.Background(), c)
		f.chores = append(f.chores, c)
		f.goal.AssignedChoreIDs = append(f.goal.AssignedChoreIDs, c.ID.String())
		choreIDs = append(choreIDs, c.ID.String())
		total = total.Add(c.Reward)
	}
	f.goalRepo.Create(context.Background(), f.goal)

	f.submission = entity.NewProgressSubmission(f.goal.ID, f.child.ID, f.parentID, choreIDs, total, now)
	f.progressRepo.Create(context.Background(), f.submission)

	return f
}

func (f *reviewFixture) approveUseCase() *ApproveProgressUseCase {
	return NewApproveProgressUseCase(
		f.progressRepo,
		f.goalRepo,
		f.choreRepo,
		f.childRepo,
		f.notificationRepo,
		f.emailService,
		discardLogger(),
	)
}

func TestApproveProgressUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("credits the goal and archives the submitted chores", func(t *testing.T) {
		f := newReviewFixture(50, 10, 3, 5)

		out, err := f.approveUseCase().Execute(ctx, ApproveProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.NewSaved != "18.00" {
			t.Errorf("expected new saved 18.00, got %s", out.NewSaved)
		}
		if out.GoalCompleted {
			t.Error("expected goal not to complete")
		}
		if out.ArchivedChores != 2 {
			t.Errorf("expected 2 archived chores, got %d", out.ArchivedChores)
		}
		for _, c := range f.chores {
			got, _ := f.choreRepo.FindByID(ctx, c.ID)
			if got.Status != entity.ChoreStatusArchived {
				t.Errorf("expected chore archived, got %s", got.Status)
			}
			if got.IsActive {
				t.Error("expected archived chore to be inactive")
			}
		}

		reviewed, _ := f.progressRepo.FindByID(ctx, f.submission.ID)
		if reviewed.Status != entity.SubmissionStatusApproved {
			t.Errorf("expected submission approved, got %s", reviewed.Status)
		}
		if reviewed.ReviewedBy != "parent@example.com" {
			t.Errorf("expected reviewer recorded, got %s", reviewed.ReviewedBy)
		}
	})

	t.Run("credit is capped and the goal completes", func(t *testing.T) {
		f := newReviewFixture(10, 8, 5)

		out, err := f.approveUseCase().Execute(ctx, ApproveProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.NewSaved != "10.00" {
			t.Errorf("expected new saved capped at 10.00, got %s", out.NewSaved)
		}
		if !out.GoalCompleted {
			t.Error("expected goal to complete")
		}
		g, _ := f.goalRepo.FindByID(ctx, f.goal.ID)
		if g.Status != entity.GoalStatusCompleted {
			t.Errorf("expected goal completed, got %s", g.Status)
		}
		if g.CompletedAt == nil {
			t.Error("expected completion timestamp to be set")
		}

		// Completion fans out to both inboxes and queues the parent email.
		completions := f.notificationRepo.byType(entity.NotificationGoalCompleted)
		if len(completions) != 2 {
			t.Errorf("expected 2 completion notifications, got %d", len(completions))
		}
		if len(f.emailService.goalEvents) != 1 || f.emailService.goalEvents[0].Event != "completed" {
			t.Errorf("expected a completed goal event email, got %v", f.emailService.goalEvents)
		}
	})

	t.Run("kid is notified of the approved progress", func(t *testing.T) {
		f := newReviewFixture(50, 0, 4)

		if _, err := f.approveUseCase().Execute(ctx, ApproveProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		approved := f.notificationRepo.byType(entity.NotificationProgressApproved)
		if len(approved) != 1 {
			t.Fatalf("expected 1 approval notification, got %d", len(approved))
		}
		if approved[0].RecipientEmail != "emma@kids.aidiy" {
			t.Errorf("expected kid inbox recipient, got %s", approved[0].RecipientEmail)
		}
	})

	t.Run("chores declined elsewhere are left alone", func(t *testing.T) {
		f := newReviewFixture(50, 0, 3, 5)
		// The second chore was already sent back to the kid by another review.
		f.chores[1].Status = entity.ChoreStatusAssigned
		f.choreRepo.Update(ctx, f.chores[1])

		out, err := f.approveUseCase().Execute(ctx, ApproveProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.ArchivedChores != 1 {
			t.Errorf("expected 1 archived chore, got %d", out.ArchivedChores)
		}
		second, _ := f.choreRepo.FindByID(ctx, f.chores[1].ID)
		if second.Status != entity.ChoreStatusAssigned {
			t.Errorf("expected reassigned chore untouched, got %s", second.Status)
		}
	})

	t.Run("unknown submission fails", func(t *testing.T) {
		f := newReviewFixture(50, 0, 3)

		_, err := f.approveUseCase().Execute(ctx, ApproveProgressInput{
			SubmissionID: uuid.New(),
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		})
		if !errors.Is(err, domainerror.ErrSubmissionNotFound) {
			t.Errorf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("another family's parent cannot review", func(t *testing.T) {
		f := newReviewFixture(50, 0, 3)

		_, err := f.approveUseCase().Execute(ctx, ApproveProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     uuid.New(),
			ParentEmail:  "stranger@example.com",
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedSubmissionAccess) {
			t.Errorf("expected ErrUnauthorizedSubmissionAccess, got %v", err)
		}
	})

	t.Run("a resolved submission cannot be approved again", func(t *testing.T) {
		f := newReviewFixture(50, 0, 3)
		input := ApproveProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		}

		if _, err := f.approveUseCase().Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := f.approveUseCase().Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrSubmissionNotPending) {
			t.Errorf("expected ErrSubmissionNotPending, got %v", err)
		}
	})
}
