package goal

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

func TestExpireGoalsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newSweep := func() (*ExpireGoalsUseCase, *goalFixture) {
		f := newGoalFixture()
		uc := NewExpireGoalsUseCase(f.goalRepo, f.childRepo, f.notificationRepo, discardLogger())
		return uc, f
	}

	expireGoal := func(f *goalFixture, saved int64) *entity.Goal {
		g := entity.NewGoal(f.child.ID, f.parentID, "Old goal", "", "Toys", decimal.NewFromInt(50), 1, "Emma", "🦊")
		g.Status = entity.GoalStatusApproved
		g.Saved = decimal.NewFromInt(saved)
		g.CreatedAt = time.Now().UTC().Add(-2 * 7 * 24 * time.Hour)
		f.goalRepo.Create(ctx, g)
		return g
	}

	t.Run("lapsed goals are archived", func(t *testing.T) {
		uc, f := newSweep()
		g := expireGoal(f, 20)

		out, err := uc.Execute(ctx, ExpireGoalsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Expired != 1 {
			t.Errorf("expected 1 expired goal, got %d", out.Expired)
		}
		archived, _ := f.goalRepo.FindByID(ctx, g.ID)
		if archived.Status != entity.GoalStatusArchived {
			t.Errorf("expected archived, got %s", archived.Status)
		}
	})

	t.Run("both inboxes are notified", func(t *testing.T) {
		uc, f := newSweep()
		expireGoal(f, 20)

		if _, err := uc.Execute(ctx, ExpireGoalsInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parentNotes, kidNotes int
		for _, n := range f.notificationRepo.forRecipient("parent@example.com") {
			if n.Type == entity.NotificationGoalExpired {
				parentNotes++
			}
		}
		for _, n := range f.notificationRepo.forRecipient("emma@kids.aidiy") {
			if n.Type == entity.NotificationGoalExpired {
				kidNotes++
			}
		}
		if parentNotes != 1 || kidNotes != 1 {
			t.Errorf("expected one expiry notification per inbox, got parent=%d kid=%d", parentNotes, kidNotes)
		}
	})

	t.Run("goals inside their window are untouched", func(t *testing.T) {
		uc, f := newSweep()
		g := entity.NewGoal(f.child.ID, f.parentID, "Fresh goal", "", "Toys", decimal.NewFromInt(50), 4, "Emma", "🦊")
		g.Status = entity.GoalStatusApproved
		f.goalRepo.Create(ctx, g)

		out, err := uc.Execute(ctx, ExpireGoalsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Expired != 0 {
			t.Errorf("expected no expiry, got %d", out.Expired)
		}
		kept, _ := f.goalRepo.FindByID(ctx, g.ID)
		if kept.Status != entity.GoalStatusApproved {
			t.Errorf("expected goal to stay approved, got %s", kept.Status)
		}
	})

	t.Run("fully funded goals never expire", func(t *testing.T) {
		uc, f := newSweep()
		g := expireGoal(f, 50)

		out, err := uc.Execute(ctx, ExpireGoalsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Expired != 0 {
			t.Errorf("expected no expiry, got %d", out.Expired)
		}
		kept, _ := f.goalRepo.FindByID(ctx, g.ID)
		if kept.Status != entity.GoalStatusApproved {
			t.Errorf("expected goal to stay approved, got %s", kept.Status)
		}
	})

	t.Run("sweep honors the batch limit", func(t *testing.T) {
		uc, f := newSweep()
		for i := 0; i < 3; i++ {
			expireGoal(f, 10)
		}

		out, err := uc.Execute(ctx, ExpireGoalsInput{Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Expired != 2 {
			t.Errorf("expected 2 expired in bounded sweep, got %d", out.Expired)
		}
	})
}
