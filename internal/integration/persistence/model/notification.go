// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table.
type NotificationModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RecipientEmail    string          `gorm:"type:varchar(255);not null;index"`
	Type              string          `gorm:"type:varchar(50);not null"`
	Title             string          `gorm:"type:varchar(255);not null"`
	Message           string          `gorm:"type:text;not null"`
	GoalID            *uuid.UUID      `gorm:"type:uuid;index"`
	SubmissionID      *uuid.UUID      `gorm:"type:uuid;index"`
	KidUsername       string          `gorm:"type:varchar(100)"`
	KidName           string          `gorm:"type:varchar(255)"`
	KidAvatar         string          `gorm:"type:varchar(255)"`
	EarnedAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CompletedChoreIDs pq.StringArray  `gorm:"type:text[]"`
	Status            string          `gorm:"type:varchar(20);not null"`
	Read              bool            `gorm:"not null;default:false"`
	CreatedAt         time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:                m.ID,
		RecipientEmail:    m.RecipientEmail,
		Type:              entity.NotificationType(m.Type),
		Title:             m.Title,
		Message:           m.Message,
		GoalID:            m.GoalID,
		SubmissionID:      m.SubmissionID,
		KidUsername:       m.KidUsername,
		KidName:           m.KidName,
		KidAvatar:         m.KidAvatar,
		EarnedAmount:      m.EarnedAmount,
		CompletedChoreIDs: m.CompletedChoreIDs,
		Status:            entity.NotificationStatus(m.Status),
		Read:              m.Read,
		CreatedAt:         m.CreatedAt,
	}
}

// NotificationFromEntity creates a model from a domain entity.
func NotificationFromEntity(n *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:                n.ID,
		RecipientEmail:    n.RecipientEmail,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		GoalID:            n.GoalID,
		SubmissionID:      n.SubmissionID,
		KidUsername:       n.KidUsername,
		KidName:           n.KidName,
		KidAvatar:         n.KidAvatar,
		EarnedAmount:      n.EarnedAmount,
		CompletedChoreIDs: n.CompletedChoreIDs,
		Status:            string(n.Status),
		Read:              n.Read,
		CreatedAt:         n.CreatedAt,
	}
}
