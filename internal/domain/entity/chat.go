// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn within a chat session.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is a kid's conversation with the AI assistant.
type ChatSession struct {
	ID         uuid.UUID
	OwnerEmail string
	Title      string
	Messages   []ChatMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewChatSession creates an empty chat session for the given owner.
func NewChatSession(ownerEmail, title string) *ChatSession {
	now := time.Now().UTC()
	if title == "" {
		title = "New chat"
	}
	return &ChatSession{
		ID:         uuid.New(),
		OwnerEmail: ownerEmail,
		Title:      title,
		Messages:   []ChatMessage{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Append adds a message to the session.
func (s *ChatSession) Append(role ChatRole, content string) {
	now := time.Now().UTC()
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content, Timestamp: now})
	s.UpdatedAt = now
}
