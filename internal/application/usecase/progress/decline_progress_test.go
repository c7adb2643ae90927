package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

func (f *reviewFixture) declineUseCase() *DeclineProgressUseCase {
	return NewDeclineProgressUseCase(
		f.progressRepo,
		f.goalRepo,
		f.choreRepo,
		f.childRepo,
		f.notificationRepo,
		discardLogger(),
	)
}

func TestDeclineProgressUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("reassigns the submitted chores without crediting", func(t *testing.T) {
		f := newReviewFixture(50, 10, 3, 5)

		out, err := f.declineUseCase().Execute(ctx, DeclineProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.KidID != "emma" {
			t.Errorf("expected kid emma, got %s", out.KidID)
		}
		if len(out.ReassignedChoreIDs) != 2 {
			t.Errorf("expected 2 reassigned chores, got %d", len(out.ReassignedChoreIDs))
		}
		for _, c := range f.chores {
			got, _ := f.choreRepo.FindByID(ctx, c.ID)
			if got.Status != entity.ChoreStatusAssigned {
				t.Errorf("expected chore reassigned, got %s", got.Status)
			}
			if got.SubmittedAt != nil {
				t.Error("expected submission timestamp to be cleared")
			}
		}

		// The savings are untouched.
		g, _ := f.goalRepo.FindByID(ctx, f.goal.ID)
		if !g.Saved.Equal(f.goal.Saved) {
			t.Errorf("expected saved unchanged, got %s", g.Saved)
		}

		reviewed, _ := f.progressRepo.FindByID(ctx, f.submission.ID)
		if reviewed.Status != entity.SubmissionStatusDeclined {
			t.Errorf("expected submission declined, got %s", reviewed.Status)
		}
	})

	t.Run("kid is told to try again", func(t *testing.T) {
		f := newReviewFixture(50, 0, 3)

		if _, err := f.declineUseCase().Execute(ctx, DeclineProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		declined := f.notificationRepo.byType(entity.NotificationProgressDeclined)
		if len(declined) != 1 {
			t.Fatalf("expected 1 decline notification, got %d", len(declined))
		}
		if declined[0].RecipientEmail != "emma@kids.aidiy" {
			t.Errorf("expected kid inbox recipient, got %s", declined[0].RecipientEmail)
		}
	})

	t.Run("only chores still awaiting review go back", func(t *testing.T) {
		f := newReviewFixture(50, 0, 3, 5)
		f.chores[0].Status = entity.ChoreStatusArchived
		f.choreRepo.Update(ctx, f.chores[0])

		out, err := f.declineUseCase().Execute(ctx, DeclineProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.ReassignedChoreIDs) != 1 {
			t.Errorf("expected 1 reassigned chore, got %d", len(out.ReassignedChoreIDs))
		}
		first, _ := f.choreRepo.FindByID(ctx, f.chores[0].ID)
		if first.Status != entity.ChoreStatusArchived {
			t.Errorf("expected archived chore untouched, got %s", first.Status)
		}
	})

	t.Run("another family's parent cannot decline", func(t *testing.T) {
		f := newReviewFixture(50, 0, 3)

		_, err := f.declineUseCase().Execute(ctx, DeclineProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     uuid.New(),
			ParentEmail:  "stranger@example.com",
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedSubmissionAccess) {
			t.Errorf("expected ErrUnauthorizedSubmissionAccess, got %v", err)
		}
	})

	t.Run("a resolved submission cannot be declined again", func(t *testing.T) {
		f := newReviewFixture(50, 0, 3)
		input := DeclineProgressInput{
			SubmissionID: f.submission.ID,
			ParentID:     f.parentID,
			ParentEmail:  "parent@example.com",
		}

		if _, err := f.declineUseCase().Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := f.declineUseCase().Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrSubmissionNotPending) {
			t.Errorf("expected ErrSubmissionNotPending, got %v", err)
		}
	})
}
