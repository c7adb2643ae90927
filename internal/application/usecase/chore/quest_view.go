package chore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/domain/valueobject"
)

// QuestViewInput represents the input for the chore selection view.
type QuestViewInput struct {
	KidUsername string
	GoalID      uuid.UUID
}

// QuestViewOutput is the server-computed chore selection view for a goal:
// the kid's assignable chores decorated for display, the chores already
// claimed by this goal (the seed selection), and the progress bar baseline.
type QuestViewOutput struct {
	Goal             *entity.Goal
	AvailableChores  []valueobject.QuestChore
	SelectedChores   []valueobject.QuestChore
	SavedPct         float64
	PotentialPct     float64
	PotentialEarning string
}

// QuestViewUseCase computes the chore selection view. It only applies to
// approved goals; any other status fails so the client returns to the
// dashboard.
type QuestViewUseCase struct {
	goalRepo  adapter.GoalRepository
	choreRepo adapter.ChoreRepository
	childRepo adapter.ChildRepository
}

// NewQuestViewUseCase creates a new QuestViewUseCase instance.
func NewQuestViewUseCase(
	goalRepo adapter.GoalRepository,
	choreRepo adapter.ChoreRepository,
	childRepo adapter.ChildRepository,
) *QuestViewUseCase {
	return &QuestViewUseCase{
		goalRepo:  goalRepo,
		choreRepo: choreRepo,
		childRepo: childRepo,
	}
}

// Execute builds the view.
func (uc *QuestViewUseCase) Execute(ctx context.Context, input QuestViewInput) (*QuestViewOutput, error) {
	child, err := uc.childRepo.FindByUsername(ctx, input.KidUsername)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	if g.ChildID != child.ID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal belongs to another kid",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	if g.Status != entity.GoalStatusApproved {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotApproved,
			"goal is not approved",
			domainerror.ErrGoalNotApproved,
		)
	}

	available, err := uc.choreRepo.List(ctx, adapter.ChoreFilter{KidUsername: child.Username})
	if err != nil {
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}

	out := &QuestViewOutput{Goal: g}
	for _, c := range available {
		if c.IsSelectable() {
			out.AvailableChores = append(out.AvailableChores, valueobject.DecorateChore(c))
		}
	}

	// Chores already claimed by this goal seed the selection so re-entering
	// the flow keeps prior picks.
	claimed, err := uc.choreRepo.FindByGoal(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claimed chores: %w", err)
	}
	selection := valueobject.NewSelection(nil)
	for _, c := range claimed {
		selection.Toggle(valueobject.DecorateChore(c))
	}
	out.SelectedChores = selection.Chores()

	potential := selection.PotentialEarnings()
	out.SavedPct, out.PotentialPct = valueobject.ProgressSegments(g.Amount, g.Saved, potential)
	out.PotentialEarning = potential.StringFixed(2)

	return out, nil
}
