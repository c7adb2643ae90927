package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// titleSnippetLen bounds how much of the first message seeds the session title.
const titleSnippetLen = 30

// ChatTurnInput represents the input for one assistant turn. A nil SessionID
// starts a new session titled from the message.
type ChatTurnInput struct {
	OwnerEmail string
	SessionID  *uuid.UUID
	Message    string
}

// ChatTurnOutput represents the output of one assistant turn.
type ChatTurnOutput struct {
	SessionID uuid.UUID
	Response  string
}

// ChatTurnUseCase runs one turn of the assistant conversation: the user
// message and the model's reply are appended to the session together.
type ChatTurnUseCase struct {
	chatRepo  adapter.ChatRepository
	aiService adapter.AIService
}

// NewChatTurnUseCase creates a new ChatTurnUseCase instance.
func NewChatTurnUseCase(chatRepo adapter.ChatRepository, aiService adapter.AIService) *ChatTurnUseCase {
	return &ChatTurnUseCase{
		chatRepo:  chatRepo,
		aiService: aiService,
	}
}

// Execute runs the turn.
func (uc *ChatTurnUseCase) Execute(ctx context.Context, input ChatTurnInput) (*ChatTurnOutput, error) {
	if input.Message == "" {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeEmptyChatMessage,
			"message required",
			nil,
		)
	}
	if !uc.aiService.IsAvailable() {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeAIUnavailable,
			"AI service unavailable",
			domainerror.ErrAIUnavailable,
		)
	}

	session, fresh, err := uc.loadOrCreate(ctx, input)
	if err != nil {
		return nil, err
	}

	reply, err := uc.aiService.Chat(ctx, session.Messages, input.Message)
	if err != nil {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeAIUnavailable,
			"failed to process AI request",
			err,
		)
	}

	if len(session.Messages) == 0 {
		session.Title = titleFromMessage(input.Message)
	}
	session.Append(entity.ChatRoleUser, input.Message)
	session.Append(entity.ChatRoleAssistant, reply)

	if fresh {
		err = uc.chatRepo.Create(ctx, session)
	} else {
		err = uc.chatRepo.Update(ctx, session)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save chat session: %w", err)
	}

	return &ChatTurnOutput{SessionID: session.ID, Response: reply}, nil
}

func (uc *ChatTurnUseCase) loadOrCreate(ctx context.Context, input ChatTurnInput) (*entity.ChatSession, bool, error) {
	if input.SessionID == nil {
		return entity.NewChatSession(input.OwnerEmail, ""), true, nil
	}
	session, err := uc.chatRepo.FindByID(ctx, *input.SessionID, input.OwnerEmail)
	if err != nil {
		return nil, false, domainerror.NewChatError(
			domainerror.ErrCodeChatSessionNotFound,
			"session not found",
			domainerror.ErrChatSessionNotFound,
		)
	}
	return session, false, nil
}

func titleFromMessage(message string) string {
	runes := []rune(message)
	if len(runes) > titleSnippetLen {
		return "Chat: " + string(runes[:titleSnippetLen]) + "..."
	}
	return "Chat: " + message
}
