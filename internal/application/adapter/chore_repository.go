// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ChoreFilter narrows chore listings. Zero values mean "no filter".
// Archived (inactive) chores are always excluded unless IncludeInactive is set.
type ChoreFilter struct {
	ParentID        *uuid.UUID
	ChildID         *uuid.UUID
	KidUsername     string
	Status          entity.ChoreStatus
	AssignedGoalID  *uuid.UUID
	IncludeInactive bool
}

// ChoreRepository defines the interface for chore persistence operations.
type ChoreRepository interface {
	// Create creates a new chore in the database.
	Create(ctx context.Context, chore *entity.Chore) error

	// FindByID retrieves a chore by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Chore, error)

	// FindByIDs retrieves the chores with the given IDs. Missing ids are
	// silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Chore, error)

	// List retrieves chores matching the filter, newest first.
	List(ctx context.Context, filter ChoreFilter) ([]*entity.Chore, error)

	// FindByGoal retrieves chores claimed by the goal, excluding archived and
	// pending_approval ones (the goal's active chore list).
	FindByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.Chore, error)

	// Update updates an existing chore in the database.
	Update(ctx context.Context, chore *entity.Chore) error

	// Delete removes a chore owned by the parent. Returns the number of rows
	// affected so callers can distinguish "not found".
	Delete(ctx context.Context, id, parentID uuid.UUID) (int64, error)

	// CountSelectable counts the kid's chores still available for goal work
	// (assigned, active, unclaimed).
	CountSelectable(ctx context.Context, kidUsername string) (int64, error)
}
