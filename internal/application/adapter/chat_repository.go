// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ChatRepository defines the interface for chat session persistence.
type ChatRepository interface {
	// Create creates a new chat session.
	Create(ctx context.Context, session *entity.ChatSession) error

	// FindByID retrieves a session owned by the given email.
	FindByID(ctx context.Context, id uuid.UUID, ownerEmail string) (*entity.ChatSession, error)

	// FindByOwner retrieves the owner's sessions, most recently updated first.
	FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.ChatSession, error)

	// Update saves changes to a session.
	Update(ctx context.Context, session *entity.ChatSession) error

	// Delete removes a session owned by the given email. Returns rows affected.
	Delete(ctx context.Context, id uuid.UUID, ownerEmail string) (int64, error)
}
