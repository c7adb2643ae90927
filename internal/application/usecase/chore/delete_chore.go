package chore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// DeleteChoreInput represents the input for chore deletion.
type DeleteChoreInput struct {
	ChoreID  uuid.UUID
	ParentID uuid.UUID
}

// DeleteChoreUseCase handles a parent deleting one of their chores.
type DeleteChoreUseCase struct {
	choreRepo adapter.ChoreRepository
}

// NewDeleteChoreUseCase creates a new DeleteChoreUseCase instance.
func NewDeleteChoreUseCase(choreRepo adapter.ChoreRepository) *DeleteChoreUseCase {
	return &DeleteChoreUseCase{choreRepo: choreRepo}
}

// Execute removes the chore. Ownership is enforced by the scoped delete.
func (uc *DeleteChoreUseCase) Execute(ctx context.Context, input DeleteChoreInput) error {
	affected, err := uc.choreRepo.Delete(ctx, input.ChoreID, input.ParentID)
	if err != nil {
		return fmt.Errorf("failed to delete chore: %w", err)
	}
	if affected == 0 {
		return domainerror.NewChoreError(
			domainerror.ErrCodeChoreNotFound,
			"chore not found",
			domainerror.ErrChoreNotFound,
		)
	}
	return nil
}
