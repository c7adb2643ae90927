// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ChatMessageResponse represents a single chat message in API responses.
type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSessionResponse represents a chat session in API responses.
type ChatSessionResponse struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Messages  []ChatMessageResponse `json:"messages,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// ToChatSessionResponse converts a domain ChatSession to a DTO, including messages.
func ToChatSessionResponse(s *entity.ChatSession) ChatSessionResponse {
	messages := make([]ChatMessageResponse, len(s.Messages))
	for i, m := range s.Messages {
		messages[i] = ChatMessageResponse{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}
	return ChatSessionResponse{
		ID:        s.ID.String(),
		Title:     s.Title,
		Messages:  messages,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToChatSessionSummary converts a session to a DTO without its messages.
func ToChatSessionSummary(s *entity.ChatSession) ChatSessionResponse {
	return ChatSessionResponse{
		ID:        s.ID.String(),
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ChatSessionMutationResponse represents the response for session create/get/rename.
type ChatSessionMutationResponse struct {
	Success bool                `json:"success"`
	Session ChatSessionResponse `json:"session"`
}

// ChatSessionListResponse represents the response for listing chat sessions.
type ChatSessionListResponse struct {
	Success  bool                  `json:"success"`
	Sessions []ChatSessionResponse `json:"sessions"`
}

// RenameSessionRequest represents the request body for renaming a session.
type RenameSessionRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// ChatTurnRequest represents the request body for one chat turn.
type ChatTurnRequest struct {
	SessionID *string `json:"session_id,omitempty" binding:"omitempty,uuid"`
	Message   string  `json:"message" binding:"required"`
}

// ChatTurnResponse represents the assistant's reply for one chat turn.
type ChatTurnResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}
