// Package chat contains AI chat session use cases.
package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// CreateSessionInput represents the input for creating a chat session.
type CreateSessionInput struct {
	OwnerEmail string
}

// CreateSessionOutput represents the output of creating a chat session.
type CreateSessionOutput struct {
	Session *entity.ChatSession
}

// CreateSessionUseCase creates an empty chat session shell; it is titled from
// the first message later.
type CreateSessionUseCase struct {
	chatRepo adapter.ChatRepository
}

// NewCreateSessionUseCase creates a new CreateSessionUseCase instance.
func NewCreateSessionUseCase(chatRepo adapter.ChatRepository) *CreateSessionUseCase {
	return &CreateSessionUseCase{chatRepo: chatRepo}
}

// Execute creates the session.
func (uc *CreateSessionUseCase) Execute(ctx context.Context, input CreateSessionInput) (*CreateSessionOutput, error) {
	session := entity.NewChatSession(input.OwnerEmail, "")
	if err := uc.chatRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return &CreateSessionOutput{Session: session}, nil
}

// ListSessionsInput represents the input for listing chat sessions.
type ListSessionsInput struct {
	OwnerEmail string
}

// ListSessionsOutput represents the output of listing chat sessions.
type ListSessionsOutput struct {
	Sessions []*entity.ChatSession
}

// ListSessionsUseCase lists the owner's sessions, most recently updated first.
type ListSessionsUseCase struct {
	chatRepo adapter.ChatRepository
}

// NewListSessionsUseCase creates a new ListSessionsUseCase instance.
func NewListSessionsUseCase(chatRepo adapter.ChatRepository) *ListSessionsUseCase {
	return &ListSessionsUseCase{chatRepo: chatRepo}
}

// Execute retrieves the sessions.
func (uc *ListSessionsUseCase) Execute(ctx context.Context, input ListSessionsInput) (*ListSessionsOutput, error) {
	sessions, err := uc.chatRepo.FindByOwner(ctx, input.OwnerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return &ListSessionsOutput{Sessions: sessions}, nil
}

// GetSessionInput represents the input for loading one chat session.
type GetSessionInput struct {
	SessionID  uuid.UUID
	OwnerEmail string
}

// GetSessionOutput represents the output of loading one chat session.
type GetSessionOutput struct {
	Session *entity.ChatSession
}

// GetSessionUseCase loads a session with its full message history.
type GetSessionUseCase struct {
	chatRepo adapter.ChatRepository
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(chatRepo adapter.ChatRepository) *GetSessionUseCase {
	return &GetSessionUseCase{chatRepo: chatRepo}
}

// Execute loads the session.
func (uc *GetSessionUseCase) Execute(ctx context.Context, input GetSessionInput) (*GetSessionOutput, error) {
	session, err := uc.chatRepo.FindByID(ctx, input.SessionID, input.OwnerEmail)
	if err != nil {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeChatSessionNotFound,
			"session not found",
			domainerror.ErrChatSessionNotFound,
		)
	}
	return &GetSessionOutput{Session: session}, nil
}

// RenameSessionInput represents the input for renaming a chat session.
type RenameSessionInput struct {
	SessionID  uuid.UUID
	OwnerEmail string
	Title      string
}

// RenameSessionUseCase renames a session.
type RenameSessionUseCase struct {
	chatRepo adapter.ChatRepository
}

// NewRenameSessionUseCase creates a new RenameSessionUseCase instance.
func NewRenameSessionUseCase(chatRepo adapter.ChatRepository) *RenameSessionUseCase {
	return &RenameSessionUseCase{chatRepo: chatRepo}
}

// Execute renames the session.
func (uc *RenameSessionUseCase) Execute(ctx context.Context, input RenameSessionInput) error {
	if input.Title == "" {
		return domainerror.NewChatError(
			domainerror.ErrCodeChatTitleRequired,
			"title required",
			nil,
		)
	}

	session, err := uc.chatRepo.FindByID(ctx, input.SessionID, input.OwnerEmail)
	if err != nil {
		return domainerror.NewChatError(
			domainerror.ErrCodeChatSessionNotFound,
			"session not found",
			domainerror.ErrChatSessionNotFound,
		)
	}

	session.Title = input.Title
	if err := uc.chatRepo.Update(ctx, session); err != nil {
		return fmt.Errorf("failed to rename chat session: %w", err)
	}
	return nil
}

// DeleteSessionInput represents the input for deleting a chat session.
type DeleteSessionInput struct {
	SessionID  uuid.UUID
	OwnerEmail string
}

// DeleteSessionUseCase deletes a session owned by the caller.
type DeleteSessionUseCase struct {
	chatRepo adapter.ChatRepository
}

// NewDeleteSessionUseCase creates a new DeleteSessionUseCase instance.
func NewDeleteSessionUseCase(chatRepo adapter.ChatRepository) *DeleteSessionUseCase {
	return &DeleteSessionUseCase{chatRepo: chatRepo}
}

// Execute deletes the session.
func (uc *DeleteSessionUseCase) Execute(ctx context.Context, input DeleteSessionInput) error {
	affected, err := uc.chatRepo.Delete(ctx, input.SessionID, input.OwnerEmail)
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	if affected == 0 {
		return domainerror.NewChatError(
			domainerror.ErrCodeChatSessionNotFound,
			"session not found",
			domainerror.ErrChatSessionNotFound,
		)
	}
	return nil
}
