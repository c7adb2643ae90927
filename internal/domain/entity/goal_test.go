// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewGoal(t *testing.T) {
	childID := uuid.New()
	parentID := uuid.New()

	// Test a new goal starts in pending_approval with nothing saved.
	t.Run("starts pending with zero saved", func(t *testing.T) {
		g := NewGoal(childID, parentID, "New Bike", "a red one", "Toys", decimal.NewFromInt(100), 8, "Emma", "🦊")

		if g.Status != GoalStatusPendingApproval {
			t.Errorf("expected status %s, got %s", GoalStatusPendingApproval, g.Status)
		}
		if !g.Saved.IsZero() {
			t.Errorf("expected saved to be zero, got %s", g.Saved)
		}
		if g.DurationWeeks != 8 {
			t.Errorf("expected duration 8, got %d", g.DurationWeeks)
		}
	})

	// Test non-positive durations fall back to the default window.
	t.Run("non-positive duration falls back to 10 weeks", func(t *testing.T) {
		g := NewGoal(childID, parentID, "New Bike", "", "Toys", decimal.NewFromInt(100), 0, "Emma", "🦊")

		if g.DurationWeeks != 10 {
			t.Errorf("expected duration 10, got %d", g.DurationWeeks)
		}
	})
}

func TestGoal_Deadline(t *testing.T) {
	g := NewGoal(uuid.New(), uuid.New(), "Skateboard", "", "Sports", decimal.NewFromInt(50), 2, "Emma", "🦊")

	want := g.CreatedAt.Add(2 * 7 * 24 * time.Hour)
	if !g.Deadline().Equal(want) {
		t.Errorf("expected deadline %v, got %v", want, g.Deadline())
	}
}

func TestGoal_IsExpired(t *testing.T) {
	newGoal := func(status GoalStatus, saved int64) *Goal {
		g := NewGoal(uuid.New(), uuid.New(), "Skateboard", "", "Sports", decimal.NewFromInt(50), 1, "Emma", "🦊")
		g.Status = status
		g.Saved = decimal.NewFromInt(saved)
		return g
	}

	t.Run("approved goal past deadline with target unmet is expired", func(t *testing.T) {
		g := newGoal(GoalStatusApproved, 20)
		after := g.Deadline().Add(time.Hour)

		if !g.IsExpired(after) {
			t.Error("expected goal to be expired")
		}
	})

	t.Run("goal before deadline is not expired", func(t *testing.T) {
		g := newGoal(GoalStatusApproved, 20)
		before := g.Deadline().Add(-time.Hour)

		if g.IsExpired(before) {
			t.Error("expected goal not to be expired before its deadline")
		}
	})

	t.Run("goal that reached its target never expires", func(t *testing.T) {
		g := newGoal(GoalStatusApproved, 50)
		after := g.Deadline().Add(time.Hour)

		if g.IsExpired(after) {
			t.Error("expected fully funded goal not to expire")
		}
	})

	t.Run("only approved goals expire", func(t *testing.T) {
		for _, status := range []GoalStatus{GoalStatusPendingApproval, GoalStatusDeclined, GoalStatusCompleted, GoalStatusArchived} {
			g := newGoal(status, 20)
			after := g.Deadline().Add(time.Hour)
			if g.IsExpired(after) {
				t.Errorf("expected %s goal not to expire", status)
			}
		}
	})
}

func TestGoal_Progress(t *testing.T) {
	g := NewGoal(uuid.New(), uuid.New(), "Skateboard", "", "Sports", decimal.NewFromInt(80), 4, "Emma", "🦊")

	t.Run("zero saved is zero percent", func(t *testing.T) {
		if got := g.Progress(); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("partial savings", func(t *testing.T) {
		g.Saved = decimal.NewFromInt(20)
		if got := g.Progress(); got != 25 {
			t.Errorf("expected 25, got %v", got)
		}
	})

	t.Run("progress is capped at 100", func(t *testing.T) {
		g.Saved = decimal.NewFromInt(200)
		if got := g.Progress(); got != 100 {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("non-positive target yields zero", func(t *testing.T) {
		zero := NewGoal(uuid.New(), uuid.New(), "Free", "", "Other", decimal.Zero, 4, "Emma", "🦊")
		zero.Saved = decimal.NewFromInt(10)
		if got := zero.Progress(); got != 0 {
			t.Errorf("expected 0 for zero target, got %v", got)
		}
	})
}

func TestGoal_Credit(t *testing.T) {
	newGoal := func(amount, saved int64) *Goal {
		g := NewGoal(uuid.New(), uuid.New(), "Skateboard", "", "Sports", decimal.NewFromInt(amount), 4, "Emma", "🦊")
		g.Saved = decimal.NewFromInt(saved)
		return g
	}

	t.Run("credit below target accumulates without completing", func(t *testing.T) {
		g := newGoal(100, 10)

		completed := g.Credit(decimal.NewFromInt(5))

		if completed {
			t.Error("expected goal not to complete")
		}
		if !g.Saved.Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected saved 15, got %s", g.Saved)
		}
	})

	t.Run("credit is capped at the target amount", func(t *testing.T) {
		g := newGoal(100, 95)

		completed := g.Credit(decimal.NewFromInt(20))

		if !completed {
			t.Error("expected goal to complete")
		}
		if !g.Saved.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected saved capped at 100, got %s", g.Saved)
		}
	})

	t.Run("credit landing exactly on the target completes", func(t *testing.T) {
		g := newGoal(100, 90)

		if completed := g.Credit(decimal.NewFromInt(10)); !completed {
			t.Error("expected goal to complete on exact target")
		}
	})

	t.Run("further credits on a full goal do not re-complete", func(t *testing.T) {
		g := newGoal(100, 100)

		if completed := g.Credit(decimal.NewFromInt(5)); completed {
			t.Error("expected no completion signal on an already full goal")
		}
		if !g.Saved.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected saved to stay at 100, got %s", g.Saved)
		}
	})
}
