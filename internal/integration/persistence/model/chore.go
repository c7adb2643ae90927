// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ChoreModel represents the chores table in the database.
type ChoreModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ParentID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChildID        *uuid.UUID      `gorm:"type:uuid;index"`
	KidUsername    string          `gorm:"type:varchar(100);index"`
	Title          string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text"`
	Category       string          `gorm:"type:varchar(100)"`
	Difficulty     string          `gorm:"type:varchar(30)"`
	Reward         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate        string          `gorm:"type:varchar(50)"`
	Status         string          `gorm:"type:varchar(30);not null;index"`
	AssignedGoalID *uuid.UUID      `gorm:"type:uuid;index"`
	IsActive       bool            `gorm:"not null;default:true"`
	SubmittedAt    *time.Time      `gorm:"type:timestamptz"`
	ArchivedAt     *time.Time      `gorm:"type:timestamptz"`
	ApprovedBy     string          `gorm:"type:varchar(255)"`
	DeclinedBy     string          `gorm:"type:varchar(255)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ChoreModel.
func (ChoreModel) TableName() string {
	return "chores"
}

// ToEntity converts a ChoreModel to a domain Chore entity.
func (m *ChoreModel) ToEntity() *entity.Chore {
	return &entity.Chore{
		ID:             m.ID,
		ParentID:       m.ParentID,
		ChildID:        m.ChildID,
		KidUsername:    m.KidUsername,
		Title:          m.Title,
		Description:    m.Description,
		Category:       m.Category,
		Difficulty:     entity.ChoreDifficulty(m.Difficulty),
		Reward:         m.Reward,
		DueDate:        m.DueDate,
		Status:         entity.ChoreStatus(m.Status),
		AssignedGoalID: m.AssignedGoalID,
		IsActive:       m.IsActive,
		SubmittedAt:    m.SubmittedAt,
		ArchivedAt:     m.ArchivedAt,
		ApprovedBy:     m.ApprovedBy,
		DeclinedBy:     m.DeclinedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ChoreFromEntity creates a ChoreModel from a domain Chore entity.
func ChoreFromEntity(chore *entity.Chore) *ChoreModel {
	return &ChoreModel{
		ID:             chore.ID,
		ParentID:       chore.ParentID,
		ChildID:        chore.ChildID,
		KidUsername:    chore.KidUsername,
		Title:          chore.Title,
		Description:    chore.Description,
		Category:       chore.Category,
		Difficulty:     string(chore.Difficulty),
		Reward:         chore.Reward,
		DueDate:        chore.DueDate,
		Status:         string(chore.Status),
		AssignedGoalID: chore.AssignedGoalID,
		IsActive:       chore.IsActive,
		SubmittedAt:    chore.SubmittedAt,
		ArchivedAt:     chore.ArchivedAt,
		ApprovedBy:     chore.ApprovedBy,
		DeclinedBy:     chore.DeclinedBy,
		CreatedAt:      chore.CreatedAt,
		UpdatedAt:      chore.UpdatedAt,
	}
}
