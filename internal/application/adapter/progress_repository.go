// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ProgressRepository defines the interface for progress submission persistence.
type ProgressRepository interface {
	// Create creates a new progress submission.
	Create(ctx context.Context, submission *entity.ProgressSubmission) error

	// FindByID retrieves a submission by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProgressSubmission, error)

	// FindPendingByGoal retrieves pending submissions for a goal.
	FindPendingByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.ProgressSubmission, error)

	// Update saves changes to a submission.
	Update(ctx context.Context, submission *entity.ProgressSubmission) error
}
