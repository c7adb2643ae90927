// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ChatSessionModel represents the chat_sessions table in the database.
type ChatSessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerEmail string    `gorm:"type:varchar(255);not null;index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Messages   string    `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the ChatSessionModel.
func (ChatSessionModel) TableName() string {
	return "chat_sessions"
}

// ToEntity converts a ChatSessionModel to a domain entity.
func (m *ChatSessionModel) ToEntity() *entity.ChatSession {
	var messages []entity.ChatMessage
	if m.Messages != "" {
		if err := json.Unmarshal([]byte(m.Messages), &messages); err != nil {
			slog.Warn("Failed to unmarshal chat messages", "error", err, "id", m.ID)
		}
	}
	if messages == nil {
		messages = []entity.ChatMessage{}
	}

	return &entity.ChatSession{
		ID:         m.ID,
		OwnerEmail: m.OwnerEmail,
		Title:      m.Title,
		Messages:   messages,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ChatSessionFromEntity creates a ChatSessionModel from a domain entity.
func ChatSessionFromEntity(s *entity.ChatSession) *ChatSessionModel {
	messagesJSON, err := json.Marshal(s.Messages)
	if err != nil {
		slog.Error("Failed to marshal chat messages", "error", err, "session_id", s.ID)
		messagesJSON = []byte("[]")
	}

	return &ChatSessionModel{
		ID:         s.ID,
		OwnerEmail: s.OwnerEmail,
		Title:      s.Title,
		Messages:   string(messagesJSON),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
