// Package valueobject contains domain value objects for the AIDIY system.
package valueobject

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

func newQuestChore(id string, amount int64) QuestChore {
	return QuestChore{ID: id, Name: "chore " + id, Amount: decimal.NewFromInt(amount)}
}

func TestDifficultyLabel(t *testing.T) {
	cases := []struct {
		in   entity.ChoreDifficulty
		want string
	}{
		{entity.ChoreDifficultyEasy, "☺️ Easy"},
		{entity.ChoreDifficultyMedium, "💪 Medium"},
		{entity.ChoreDifficultyHard, "🔥 Hard"},
		{"easy", "☺️ Easy"},
		{"HARD", "🔥 Hard"},
		{"extreme", "extreme"},
	}
	for _, tc := range cases {
		if got := DifficultyLabel(tc.in); got != tc.want {
			t.Errorf("DifficultyLabel(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestDecorateChore(t *testing.T) {
	kidID := uuid.New()

	t.Run("known category gets an emoji prefix", func(t *testing.T) {
		c := entity.NewChore(uuid.New(), &kidID, "emma", "Wash dishes", "after dinner", "Kitchen", entity.ChoreDifficultyEasy, decimal.NewFromFloat(3.4), "2026-09-01")

		q := DecorateChore(c)

		if q.Name != "🍳 Wash dishes" {
			t.Errorf("expected decorated name, got %q", q.Name)
		}
		if q.Difficulty != "☺️ Easy" {
			t.Errorf("expected kid-friendly difficulty, got %q", q.Difficulty)
		}
	})

	t.Run("reward is rounded to whole units", func(t *testing.T) {
		c := entity.NewChore(uuid.New(), &kidID, "emma", "Rake leaves", "", "Outdoor", entity.ChoreDifficultyMedium, decimal.NewFromFloat(4.6), "")

		q := DecorateChore(c)

		if !q.Amount.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected amount 5, got %s", q.Amount)
		}
	})

	t.Run("unknown category keeps the plain title", func(t *testing.T) {
		c := entity.NewChore(uuid.New(), &kidID, "emma", "Mystery task", "", "Chemistry", entity.ChoreDifficultyHard, decimal.NewFromInt(10), "")

		if q := DecorateChore(c); q.Name != "Mystery task" {
			t.Errorf("expected undecorated name, got %q", q.Name)
		}
	})
}

func TestSelection_Toggle(t *testing.T) {
	a := newQuestChore("a", 2)
	b := newQuestChore("b", 3)

	s := NewSelection(nil)

	// Toggling on adds, toggling again removes.
	s.Toggle(a)
	s.Toggle(b)
	if s.Len() != 2 {
		t.Fatalf("expected 2 selected, got %d", s.Len())
	}

	s.Toggle(a)
	if s.Contains("a") {
		t.Error("expected a to be removed after second toggle")
	}
	if !s.Contains("b") {
		t.Error("expected b to remain selected")
	}

	if got := s.PotentialEarnings(); !got.Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected potential earnings 3, got %s", got)
	}
}

func TestSelection_SeededFromPriorPicks(t *testing.T) {
	prev := []QuestChore{newQuestChore("a", 2), newQuestChore("b", 3), newQuestChore("a", 2)}

	s := NewSelection(prev)

	// Duplicates in the seed are collapsed.
	if s.Len() != 2 {
		t.Errorf("expected 2 seeded picks, got %d", s.Len())
	}
	if !s.Contains("a") || !s.Contains("b") {
		t.Error("expected seeded picks to be retained")
	}
}

func TestSelection_NewChoreIDs(t *testing.T) {
	prev := []QuestChore{newQuestChore("a", 2), newQuestChore("b", 3)}

	s := NewSelection(prev)
	s.Toggle(newQuestChore("c", 4))
	s.Toggle(newQuestChore("d", 1))

	// Only chores outside the previously assigned set are reported.
	ids := s.NewChoreIDs(prev)
	if len(ids) != 2 {
		t.Fatalf("expected 2 new ids, got %d", len(ids))
	}
	if ids[0] != "c" || ids[1] != "d" {
		t.Errorf("expected [c d] in pick order, got %v", ids)
	}
}

func TestProgressSegments(t *testing.T) {
	amount := decimal.NewFromInt(100)

	t.Run("segments are percentages of the goal amount", func(t *testing.T) {
		savedPct, potentialPct := ProgressSegments(amount, decimal.NewFromInt(30), decimal.NewFromInt(20))

		if savedPct != 30 {
			t.Errorf("expected saved 30, got %v", savedPct)
		}
		if potentialPct != 20 {
			t.Errorf("expected potential 20, got %v", potentialPct)
		}
	})

	t.Run("potential is clamped to remaining headroom", func(t *testing.T) {
		savedPct, potentialPct := ProgressSegments(amount, decimal.NewFromInt(90), decimal.NewFromInt(50))

		if savedPct != 90 {
			t.Errorf("expected saved 90, got %v", savedPct)
		}
		if potentialPct != 10 {
			t.Errorf("expected potential clamped to 10, got %v", potentialPct)
		}
	})

	t.Run("saved beyond the target is clamped to 100", func(t *testing.T) {
		savedPct, potentialPct := ProgressSegments(amount, decimal.NewFromInt(150), decimal.NewFromInt(10))

		if savedPct != 100 {
			t.Errorf("expected saved clamped to 100, got %v", savedPct)
		}
		if potentialPct != 0 {
			t.Errorf("expected potential 0, got %v", potentialPct)
		}
	})

	t.Run("zero amount yields empty bar", func(t *testing.T) {
		savedPct, potentialPct := ProgressSegments(decimal.Zero, decimal.NewFromInt(10), decimal.NewFromInt(10))

		if savedPct != 0 || potentialPct != 0 {
			t.Errorf("expected 0/0, got %v/%v", savedPct, potentialPct)
		}
	})
}
