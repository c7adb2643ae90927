// Package chore contains chore-related use cases.
package chore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

type assignFixture struct {
	choreRepo *fakeChoreRepo
	goalRepo  *fakeGoalRepo
	childRepo *fakeChildRepo

	parentID uuid.UUID
	child    *entity.Child
	goal     *entity.Goal
}

// newAssignFixture seeds a kid with an approved goal and no claimed chores.
func newAssignFixture() *assignFixture {
	f := &assignFixture{
		choreRepo: newFakeChoreRepo(),
		goalRepo:  newFakeGoalRepo(),
		childRepo: newFakeChildRepo(),
		parentID:  uuid.New(),
	}

	f.child = entity.NewChild(f.parentID, "parent@example.com", "emma", "Emma", "", "🦊", "2015-06-01", "hash")
	f.childRepo.Create(context.Background(), f.child)

	f.goal = entity.NewGoal(f.child.ID, f.parentID, "Skateboard", "", "Sports", decimal.NewFromInt(50), 4, "Emma", "🦊")
	f.goal.Status = entity.GoalStatusApproved
	f.goalRepo.Create(context.Background(), f.goal)

	return f
}

func (f *assignFixture) newChore(assigned bool) *entity.Chore {
	var kidID *uuid.UUID
	username := ""
	if assigned {
		id := f.child.ID
		kidID = &id
		username = "emma"
	}
	c := entity.NewChore(f.parentID, kidID, username, "Dishes", "", "Kitchen", entity.ChoreDifficultyEasy, decimal.NewFromInt(3), "")
	f.choreRepo.Create(context.Background(), c)
	return c
}

func (f *assignFixture) useCase() *AssignToGoalUseCase {
	return NewAssignToGoalUseCase(f.choreRepo, f.goalRepo, f.childRepo)
}

func TestAssignToGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("claims selected chores for the goal", func(t *testing.T) {
		f := newAssignFixture()
		first := f.newChore(true)
		second := f.newChore(true)

		out, err := f.useCase().Execute(ctx, AssignToGoalInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    []uuid.UUID{first.ID, second.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Assigned) != 2 {
			t.Fatalf("expected 2 assigned chores, got %d", len(out.Assigned))
		}
		for _, c := range out.Assigned {
			if c.AssignedGoalID == nil || *c.AssignedGoalID != f.goal.ID {
				t.Errorf("expected chore claimed by goal, got %v", c.AssignedGoalID)
			}
		}
		if len(out.Goal.AssignedChoreIDs) != 2 {
			t.Errorf("expected 2 ids recorded on goal, got %v", out.Goal.AssignedChoreIDs)
		}
	})

	t.Run("an unassigned chore is claimed for the kid too", func(t *testing.T) {
		f := newAssignFixture()
		open := f.newChore(false)

		out, err := f.useCase().Execute(ctx, AssignToGoalInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    []uuid.UUID{open.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Assigned[0].KidUsername != "emma" {
			t.Errorf("expected open chore claimed for emma, got %s", out.Assigned[0].KidUsername)
		}
		if out.Assigned[0].ChildID == nil || *out.Assigned[0].ChildID != f.child.ID {
			t.Error("expected kid id recorded on open chore")
		}
	})

	t.Run("re-claiming for the same goal is a no-op", func(t *testing.T) {
		f := newAssignFixture()
		c := f.newChore(true)
		input := AssignToGoalInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    []uuid.UUID{c.ID},
		}

		if _, err := f.useCase().Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := f.useCase().Execute(ctx, input)
		if err != nil {
			t.Fatalf("expected overlapping re-claim to succeed, got %v", err)
		}

		// The id is recorded once despite the double claim.
		if len(out.Goal.AssignedChoreIDs) != 1 {
			t.Errorf("expected 1 recorded id, got %v", out.Goal.AssignedChoreIDs)
		}
	})

	t.Run("a chore claimed by another goal is rejected", func(t *testing.T) {
		f := newAssignFixture()
		c := f.newChore(true)
		otherGoal := uuid.New()
		c.AssignedGoalID = &otherGoal
		f.choreRepo.Update(ctx, c)

		_, err := f.useCase().Execute(ctx, AssignToGoalInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    []uuid.UUID{c.ID},
		})
		if !errors.Is(err, domainerror.ErrChoreAlreadyClaimed) {
			t.Errorf("expected ErrChoreAlreadyClaimed, got %v", err)
		}
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		f := newAssignFixture()

		_, err := f.useCase().Execute(ctx, AssignToGoalInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
		})
		if !errors.Is(err, domainerror.ErrNoChoresSelected) {
			t.Errorf("expected ErrNoChoresSelected, got %v", err)
		}
	})

	t.Run("unapproved goal cannot claim chores", func(t *testing.T) {
		f := newAssignFixture()
		f.goal.Status = entity.GoalStatusPendingApproval
		f.goalRepo.Update(ctx, f.goal)
		c := f.newChore(true)

		_, err := f.useCase().Execute(ctx, AssignToGoalInput{
			KidUsername: "emma",
			GoalID:      f.goal.ID,
			ChoreIDs:    []uuid.UUID{c.ID},
		})
		if !errors.Is(err, domainerror.ErrGoalNotApproved) {
			t.Errorf("expected ErrGoalNotApproved, got %v", err)
		}
	})

	t.Run("another kid's goal is off limits", func(t *testing.T) {
		f := newAssignFixture()
		other := entity.NewChild(f.parentID, "parent@example.com", "leo", "Leo", "", "🐯", "2016-01-01", "hash")
		f.childRepo.Create(ctx, other)
		c := f.newChore(true)

		_, err := f.useCase().Execute(ctx, AssignToGoalInput{
			KidUsername: "leo",
			GoalID:      f.goal.ID,
			ChoreIDs:    []uuid.UUID{c.ID},
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})
}
