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

type submitFixture struct {
	*reviewFixture
}

// newSubmitFixture seeds an approved goal with claimed chores still assigned
// to the kid, ready for submission.
func newSubmitFixture(rewards ...int64) *submitFixture {
	f := newReviewFixture(100, 0, rewards...)
	for _, c := range f.chores {
		c.Status = entity.ChoreStatusAssigned
		c.SubmittedAt = nil
		f.choreRepo.Update(context.Background(), c)
	}
	return &submitFixture{f}
}

func (f *submitFixture) useCase() *SubmitProgressUseCase {
	return NewSubmitProgressUseCase(
		f.goalRepo,
		f.choreRepo,
		f.childRepo,
		f.progressRepo,
		f.notificationRepo,
	)
}

func (f *submitFixture) choreIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(f.chores))
	for _, c := range f.chores {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestSubmitProgressUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("records a pending batch with the server-side total", func(t *testing.T) {
		f := newSubmitFixture(3, 5)

		out, err := f.useCase().Execute(ctx, SubmitProgressInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    f.choreIDs(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Submission.Status != entity.SubmissionStatusPending {
			t.Errorf("expected pending submission, got %s", out.Submission.Status)
		}
		if !out.Submission.TotalEarned.Equal(decimal.NewFromInt(8)) {
			t.Errorf("expected total 8, got %s", out.Submission.TotalEarned)
		}
		for _, c := range f.chores {
			got, _ := f.choreRepo.FindByID(ctx, c.ID)
			if got.Status != entity.ChoreStatusPendingApproval {
				t.Errorf("expected chore pending_approval, got %s", got.Status)
			}
			if got.SubmittedAt == nil {
				t.Error("expected submission timestamp to be set")
			}
		}

		// The parent gets an actionable review notification.
		submitted := f.notificationRepo.byType(entity.NotificationProgressSubmission)
		if len(submitted) != 1 {
			t.Fatalf("expected 1 submission notification, got %d", len(submitted))
		}
		if submitted[0].RecipientEmail != "parent@example.com" {
			t.Errorf("expected parent recipient, got %s", submitted[0].RecipientEmail)
		}
		if submitted[0].SubmissionID == nil || *submitted[0].SubmissionID != out.Submission.ID {
			t.Error("expected notification to reference the submission")
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		f := newSubmitFixture(3)

		_, err := f.useCase().Execute(ctx, SubmitProgressInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
		})
		if !errors.Is(err, domainerror.ErrEmptySubmission) {
			t.Errorf("expected ErrEmptySubmission, got %v", err)
		}
	})

	t.Run("another kid cannot submit against the goal", func(t *testing.T) {
		f := newSubmitFixture(3)
		other := entity.NewChild(f.parentID, "parent@example.com", "leo", "Leo", "", "🐯", "2016-01-01", "hash")
		f.childRepo.Create(ctx, other)

		_, err := f.useCase().Execute(ctx, SubmitProgressInput{
			KidUsername: "leo",
			GoalID:      f.goal.ID,
			ChoreIDs:    f.choreIDs(),
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})

	t.Run("unapproved goal cannot receive progress", func(t *testing.T) {
		f := newSubmitFixture(3)
		f.goal.Status = entity.GoalStatusPendingApproval
		f.goalRepo.Update(ctx, f.goal)

		_, err := f.useCase().Execute(ctx, SubmitProgressInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    f.choreIDs(),
		})
		if !errors.Is(err, domainerror.ErrGoalNotApproved) {
			t.Errorf("expected ErrGoalNotApproved, got %v", err)
		}
	})

	t.Run("a lapsed deadline blocks submission", func(t *testing.T) {
		f := newSubmitFixture(3)
		f.goal.CreatedAt = time.Now().UTC().Add(-5 * 7 * 24 * time.Hour)
		f.goalRepo.Update(ctx, f.goal)

		_, err := f.useCase().Execute(ctx, SubmitProgressInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    f.choreIDs(),
		})
		if !errors.Is(err, domainerror.ErrDeadlinePassed) {
			t.Errorf("expected ErrDeadlinePassed, got %v", err)
		}
	})

	t.Run("unknown chore id fails before any write", func(t *testing.T) {
		f := newSubmitFixture(3)

		_, err := f.useCase().Execute(ctx, SubmitProgressInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    append(f.choreIDs(), uuid.New()),
		})
		if !errors.Is(err, domainerror.ErrChoreNotFound) {
			t.Errorf("expected ErrChoreNotFound, got %v", err)
		}

		// The real chores are untouched.
		for _, c := range f.chores {
			got, _ := f.choreRepo.FindByID(ctx, c.ID)
			if got.Status != entity.ChoreStatusAssigned {
				t.Errorf("expected chore left assigned, got %s", got.Status)
			}
		}
	})

	t.Run("chore claimed by another goal is not submittable", func(t *testing.T) {
		f := newSubmitFixture(3)
		otherGoal := uuid.New()
		f.chores[0].AssignedGoalID = &otherGoal
		f.choreRepo.Update(ctx, f.chores[0])

		_, err := f.useCase().Execute(ctx, SubmitProgressInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    f.choreIDs(),
		})
		if !errors.Is(err, domainerror.ErrChoreNotSubmittable) {
			t.Errorf("expected ErrChoreNotSubmittable, got %v", err)
		}
	})
}
