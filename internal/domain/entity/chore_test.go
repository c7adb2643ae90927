// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewChore(t *testing.T) {
	parentID := uuid.New()

	// Test a chore with no assignee starts pending.
	t.Run("without kid starts pending", func(t *testing.T) {
		c := NewChore(parentID, nil, "", "Dishes", "", "Kitchen", ChoreDifficultyEasy, decimal.NewFromInt(3), "")

		if c.Status != ChoreStatusPending {
			t.Errorf("expected status %s, got %s", ChoreStatusPending, c.Status)
		}
		if !c.IsActive {
			t.Error("expected new chore to be active")
		}
	})

	// Test a chore assigned at creation time starts assigned.
	t.Run("with kid starts assigned", func(t *testing.T) {
		kidID := uuid.New()
		c := NewChore(parentID, &kidID, "emma", "Dishes", "", "Kitchen", ChoreDifficultyEasy, decimal.NewFromInt(3), "")

		if c.Status != ChoreStatusAssigned {
			t.Errorf("expected status %s, got %s", ChoreStatusAssigned, c.Status)
		}
		if c.KidUsername != "emma" {
			t.Errorf("expected kid username emma, got %s", c.KidUsername)
		}
	})
}

func TestChore_IsSelectable(t *testing.T) {
	kidID := uuid.New()
	newChore := func(status ChoreStatus, claimed bool) *Chore {
		c := NewChore(uuid.New(), &kidID, "emma", "Dishes", "", "Kitchen", ChoreDifficultyEasy, decimal.NewFromInt(3), "")
		c.Status = status
		if claimed {
			goalID := uuid.New()
			c.AssignedGoalID = &goalID
		}
		return c
	}

	t.Run("assigned unclaimed chore is selectable", func(t *testing.T) {
		if !newChore(ChoreStatusAssigned, false).IsSelectable() {
			t.Error("expected assigned unclaimed chore to be selectable")
		}
	})

	t.Run("pending unclaimed chore is selectable", func(t *testing.T) {
		if !newChore(ChoreStatusPending, false).IsSelectable() {
			t.Error("expected pending unclaimed chore to be selectable")
		}
	})

	t.Run("claimed chore is not selectable", func(t *testing.T) {
		if newChore(ChoreStatusAssigned, true).IsSelectable() {
			t.Error("expected claimed chore not to be selectable")
		}
	})

	t.Run("submitted or finished chores are not selectable", func(t *testing.T) {
		for _, status := range []ChoreStatus{ChoreStatusPendingApproval, ChoreStatusCompleted, ChoreStatusArchived} {
			if newChore(status, false).IsSelectable() {
				t.Errorf("expected %s chore not to be selectable", status)
			}
		}
	})
}

func TestChore_ClaimForGoal(t *testing.T) {
	kidID := uuid.New()
	c := NewChore(uuid.New(), &kidID, "emma", "Dishes", "", "Kitchen", ChoreDifficultyEasy, decimal.NewFromInt(3), "")
	goalID := uuid.New()

	c.ClaimForGoal(goalID)

	if c.AssignedGoalID == nil || *c.AssignedGoalID != goalID {
		t.Errorf("expected chore to be claimed by %s, got %v", goalID, c.AssignedGoalID)
	}
	if c.Status != ChoreStatusAssigned {
		t.Errorf("expected status %s after claim, got %s", ChoreStatusAssigned, c.Status)
	}
	if c.IsSelectable() {
		t.Error("expected claimed chore not to be selectable")
	}
}
