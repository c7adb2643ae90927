// Package valueobject contains domain value objects for the AIDIY system.
package valueobject

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

func TestComputeDeadline(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("days remaining is the ceiling of the gap", func(t *testing.T) {
		now := createdAt.Add(7*24*time.Hour - time.Hour)
		d := ComputeDeadline(createdAt, 1, now)

		if d.DaysRemaining != 1 {
			t.Errorf("expected 1 day remaining, got %d", d.DaysRemaining)
		}
		if !d.Warning {
			t.Error("expected warning inside the 3-day window")
		}
		if d.Passed {
			t.Error("expected deadline not passed")
		}
	})

	t.Run("far from the deadline there is no warning", func(t *testing.T) {
		d := ComputeDeadline(createdAt, 4, createdAt)

		if d.DaysRemaining != 28 {
			t.Errorf("expected 28 days remaining, got %d", d.DaysRemaining)
		}
		if d.Warning {
			t.Error("expected no warning 28 days out")
		}
	})

	t.Run("past the deadline days go negative and passed is set", func(t *testing.T) {
		now := createdAt.Add(7*24*time.Hour + 30*time.Hour)
		d := ComputeDeadline(createdAt, 1, now)

		if d.DaysRemaining != -1 {
			t.Errorf("expected -1 days remaining, got %d", d.DaysRemaining)
		}
		if !d.Passed {
			t.Error("expected passed to be set")
		}
		if d.Warning {
			t.Error("expected no warning once passed")
		}
	})
}

func reconcileFixture() (*entity.Goal, []*entity.Chore) {
	g := entity.NewGoal(uuid.New(), uuid.New(), "Skateboard", "", "Sports", decimal.NewFromInt(50), 4, "Emma", "🦊")
	kidID := g.ChildID
	var chores []*entity.Chore
	for _, title := range []string{"Dishes", "Laundry", "Vacuum"} {
		c := entity.NewChore(g.ParentID, &kidID, "emma", title, "", "Cleaning", entity.ChoreDifficultyEasy, decimal.NewFromInt(3), "")
		c.ClaimForGoal(g.ID)
		chores = append(chores, c)
	}
	return g, chores
}

func TestReconcileProgress(t *testing.T) {
	now := time.Now().UTC()

	t.Run("all chores assigned yields active view", func(t *testing.T) {
		g, chores := reconcileFixture()
		ids := []string{chores[0].ID.String(), chores[1].ID.String()}

		view := ReconcileProgress(g, ids, chores, now)

		if view.State != ProgressViewActive {
			t.Errorf("expected active, got %s", view.State)
		}
		for _, id := range ids {
			if view.ChoreStatuses[id] != string(entity.ChoreStatusAssigned) {
				t.Errorf("expected assigned status for %s, got %s", id, view.ChoreStatuses[id])
			}
		}
	})

	t.Run("any submitted chore makes the view read-only", func(t *testing.T) {
		g, chores := reconcileFixture()
		chores[1].Status = entity.ChoreStatusPendingApproval
		ids := []string{chores[0].ID.String(), chores[1].ID.String()}

		view := ReconcileProgress(g, ids, chores, now)

		if view.State != ProgressViewPendingApproval {
			t.Errorf("expected pending_approval, got %s", view.State)
		}
	})

	t.Run("a chore missing from the active list locks the view", func(t *testing.T) {
		g, chores := reconcileFixture()
		// The second pick was submitted, so the active chore list no longer
		// carries it. The first is still assigned.
		submitted := chores[1].ID.String()
		ids := []string{chores[0].ID.String(), submitted}
		remaining := []*entity.Chore{chores[0], chores[2]}

		view := ReconcileProgress(g, ids, remaining, now)

		if view.State != ProgressViewPendingApproval {
			t.Errorf("expected pending_approval while a review is outstanding, got %s", view.State)
		}
		if view.ChoreStatuses[submitted] != StatusArchivedOrPending {
			t.Errorf("expected %s for submitted chore, got %s", StatusArchivedOrPending, view.ChoreStatuses[submitted])
		}
	})

	t.Run("every pick consumed sends the kid back to the dashboard", func(t *testing.T) {
		g, chores := reconcileFixture()
		// The selected ids are no longer in the goal's active chore list.
		ids := []string{uuid.NewString(), uuid.NewString()}

		view := ReconcileProgress(g, ids, chores, now)

		if view.State != ProgressViewRedirectDashboard {
			t.Errorf("expected redirect_dashboard, got %s", view.State)
		}
		for _, id := range ids {
			if view.ChoreStatuses[id] != StatusArchivedOrPending {
				t.Errorf("expected %s for consumed chore, got %s", StatusArchivedOrPending, view.ChoreStatuses[id])
			}
		}
	})

	t.Run("mixed absent and live picks are read-only, not a redirect", func(t *testing.T) {
		g, chores := reconcileFixture()
		ids := []string{uuid.NewString(), chores[0].ID.String()}

		view := ReconcileProgress(g, ids, chores, now)

		if view.State != ProgressViewPendingApproval {
			t.Errorf("expected pending_approval, got %s", view.State)
		}
	})

	t.Run("empty selection is not a redirect", func(t *testing.T) {
		g, chores := reconcileFixture()

		view := ReconcileProgress(g, nil, chores, now)

		if view.State != ProgressViewActive {
			t.Errorf("expected active for empty selection, got %s", view.State)
		}
	})
}

func TestCompletionSet(t *testing.T) {
	selected := []QuestChore{
		newQuestChore("a", 2),
		newQuestChore("b", 3),
		newQuestChore("c", 5),
	}

	t.Run("toggle on then off restores prior state", func(t *testing.T) {
		cs := NewCompletionSet()

		if done := cs.Toggle("a"); !done {
			t.Error("expected first toggle to mark complete")
		}
		if done := cs.Toggle("a"); done {
			t.Error("expected second toggle to clear")
		}
		if cs.Len() != 0 {
			t.Errorf("expected empty set, got %d", cs.Len())
		}
	})

	t.Run("total earned covers only the completed subset", func(t *testing.T) {
		cs := NewCompletionSet()
		cs.Toggle("a")
		cs.Toggle("c")

		if got := cs.TotalEarned(selected); !got.Equal(decimal.NewFromInt(7)) {
			t.Errorf("expected 7, got %s", got)
		}
	})

	t.Run("completed ids come out in selection order", func(t *testing.T) {
		cs := NewCompletionSet()
		cs.Toggle("c")
		cs.Toggle("a")

		ids := cs.CompletedIDs(selected)
		if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
			t.Errorf("expected [a c], got %v", ids)
		}
	})
}
