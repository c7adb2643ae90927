// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// UserRepository defines the interface for parent account persistence.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates an existing user in the database.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail checks if a verified user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PendingUserRepository defines the interface for unverified registrations.
// A pending registration is upserted on register and removed on promotion.
type PendingUserRepository interface {
	// Upsert creates or replaces the pending registration for the email.
	Upsert(ctx context.Context, pending *entity.PendingUser) error

	// FindByEmail retrieves a pending registration by email.
	FindByEmail(ctx context.Context, email string) (*entity.PendingUser, error)

	// DeleteByEmail removes a pending registration.
	DeleteByEmail(ctx context.Context, email string) error
}

// ChildRepository defines the interface for kid account persistence.
type ChildRepository interface {
	// Create creates a new child in the database.
	Create(ctx context.Context, child *entity.Child) error

	// FindByID retrieves a child by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error)

	// FindByUsername retrieves a child by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Child, error)

	// FindByParent retrieves all children of a parent.
	FindByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error)

	// Update updates an existing child in the database.
	Update(ctx context.Context, child *entity.Child) error

	// ExistsByUsername checks whether the username is already taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
