// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

type goalFixture struct {
	goalRepo         *fakeGoalRepo
	childRepo        *fakeChildRepo
	notificationRepo *fakeNotificationRepo
	emailService     *fakeEmailService

	parentID uuid.UUID
	child    *entity.Child
	goal     *entity.Goal
}

// newGoalFixture seeds a kid with one pending goal and its approval-request
// notification.
func newGoalFixture() *goalFixture {
	f := &goalFixture{
		goalRepo:         newFakeGoalRepo(),
		childRepo:        newFakeChildRepo(),
		notificationRepo: newFakeNotificationRepo(),
		emailService:     newFakeEmailService(),
		parentID:         uuid.New(),
	}

	f.child = entity.NewChild(f.parentID, "parent@example.com", "emma", "Emma", "", "🦊", "2015-06-01", "hash")
	f.childRepo.Create(context.Background(), f.child)

	f.goal = entity.NewGoal(f.child.ID, f.parentID, "Skateboard", "", "Sports", decimal.NewFromInt(50), 4, "Emma", "🦊")
	f.goalRepo.Create(context.Background(), f.goal)

	request := entity.NewNotification(
		"parent@example.com",
		entity.NotificationGoalApprovalRequest,
		"Emma wants a new goal",
		"Skateboard",
		entity.NotificationStatusPending,
	)
	goalID := f.goal.ID
	request.GoalID = &goalID
	f.notificationRepo.Create(context.Background(), request)

	return f
}

func (f *goalFixture) approveUseCase() *ApproveGoalUseCase {
	return NewApproveGoalUseCase(
		f.goalRepo,
		f.childRepo,
		f.notificationRepo,
		f.emailService,
		discardLogger(),
	)
}

func TestApproveGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("pending goal becomes approved", func(t *testing.T) {
		f := newGoalFixture()

		out, err := f.approveUseCase().Execute(ctx, ApproveGoalInput{
			GoalID:      f.goal.ID,
			ParentID:    f.parentID,
			ParentEmail: "parent@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Goal.Status != entity.GoalStatusApproved {
			t.Errorf("expected approved, got %s", out.Goal.Status)
		}
		if out.Goal.ApprovedBy != "parent@example.com" {
			t.Errorf("expected approver recorded, got %s", out.Goal.ApprovedBy)
		}
		if out.Goal.ApprovedAt == nil {
			t.Error("expected approval timestamp to be set")
		}
	})

	t.Run("approval resolves the request notification", func(t *testing.T) {
		f := newGoalFixture()

		if _, err := f.approveUseCase().Execute(ctx, ApproveGoalInput{
			GoalID:      f.goal.ID,
			ParentID:    f.parentID,
			ParentEmail: "parent@example.com",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		requests := f.notificationRepo.forRecipient("parent@example.com")
		if len(requests) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(requests))
		}
		if requests[0].Status != entity.NotificationStatusApproved {
			t.Errorf("expected notification resolved as approved, got %s", requests[0].Status)
		}
	})

	t.Run("approval queues the goal event email", func(t *testing.T) {
		f := newGoalFixture()

		if _, err := f.approveUseCase().Execute(ctx, ApproveGoalInput{
			GoalID:      f.goal.ID,
			ParentID:    f.parentID,
			ParentEmail: "parent@example.com",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(f.emailService.goalEvents) != 1 {
			t.Fatalf("expected 1 queued email, got %d", len(f.emailService.goalEvents))
		}
		event := f.emailService.goalEvents[0]
		if event.Event != "approved" {
			t.Errorf("expected approved event, got %s", event.Event)
		}
		if event.GoalTitle != "Skateboard" {
			t.Errorf("expected goal title in email, got %s", event.GoalTitle)
		}
	})

	t.Run("unknown goal fails", func(t *testing.T) {
		f := newGoalFixture()

		_, err := f.approveUseCase().Execute(ctx, ApproveGoalInput{
			GoalID:      uuid.New(),
			ParentID:    f.parentID,
			ParentEmail: "parent@example.com",
		})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("another family's parent cannot approve", func(t *testing.T) {
		f := newGoalFixture()

		_, err := f.approveUseCase().Execute(ctx, ApproveGoalInput{
			GoalID:      f.goal.ID,
			ParentID:    uuid.New(),
			ParentEmail: "stranger@example.com",
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})

	t.Run("approving twice fails", func(t *testing.T) {
		f := newGoalFixture()
		input := ApproveGoalInput{
			GoalID:      f.goal.ID,
			ParentID:    f.parentID,
			ParentEmail: "parent@example.com",
		}

		if _, err := f.approveUseCase().Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := f.approveUseCase().Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrGoalNotPending) {
			t.Errorf("expected ErrGoalNotPending, got %v", err)
		}
	})
}

func TestDeclineGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("pending goal becomes declined", func(t *testing.T) {
		f := newGoalFixture()
		uc := NewDeclineGoalUseCase(f.goalRepo, f.notificationRepo)

		out, err := uc.Execute(ctx, DeclineGoalInput{GoalID: f.goal.ID, ParentID: f.parentID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Goal.Status != entity.GoalStatusDeclined {
			t.Errorf("expected declined, got %s", out.Goal.Status)
		}
		requests := f.notificationRepo.forRecipient("parent@example.com")
		if requests[0].Status != entity.NotificationStatusDeclined {
			t.Errorf("expected notification resolved as declined, got %s", requests[0].Status)
		}
	})

	t.Run("declining twice is a no-op success", func(t *testing.T) {
		f := newGoalFixture()
		uc := NewDeclineGoalUseCase(f.goalRepo, f.notificationRepo)
		input := DeclineGoalInput{GoalID: f.goal.ID, ParentID: f.parentID}

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("expected double decline to succeed, got %v", err)
		}
		if out.Goal.Status != entity.GoalStatusDeclined {
			t.Errorf("expected declined, got %s", out.Goal.Status)
		}
	})

	t.Run("an approved goal cannot be declined", func(t *testing.T) {
		f := newGoalFixture()
		f.goal.Status = entity.GoalStatusApproved
		f.goalRepo.Update(ctx, f.goal)
		uc := NewDeclineGoalUseCase(f.goalRepo, f.notificationRepo)

		_, err := uc.Execute(ctx, DeclineGoalInput{GoalID: f.goal.ID, ParentID: f.parentID})
		if !errors.Is(err, domainerror.ErrGoalNotPending) {
			t.Errorf("expected ErrGoalNotPending, got %v", err)
		}
	})
}
