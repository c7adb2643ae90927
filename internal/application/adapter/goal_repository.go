// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByChild retrieves all goals of a kid, newest first.
	FindByChild(ctx context.Context, childID uuid.UUID) ([]*entity.Goal, error)

	// FindByParent retrieves all goals across the parent's children, newest first.
	FindByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// FindExpired retrieves approved goals whose deadline lapsed before the
	// given instant with the target still unmet. Used by the expiry sweeper.
	FindExpired(ctx context.Context, now time.Time, limit int) ([]*entity.Goal, error)
}
