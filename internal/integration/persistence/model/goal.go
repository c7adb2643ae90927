// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. DeadlineAt is
// denormalized from created_at + duration so the expiry sweep can query it
// directly.
type GoalModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ChildID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ParentID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title            string          `gorm:"type:varchar(255);not null"`
	Description      string          `gorm:"type:text"`
	Category         string          `gorm:"type:varchar(100)"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DurationWeeks    int             `gorm:"not null"`
	Saved            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status           string          `gorm:"type:varchar(30);not null;index"`
	KidName          string          `gorm:"type:varchar(100)"`
	KidAvatar        string          `gorm:"type:varchar(20)"`
	AssignedChoreIDs pq.StringArray  `gorm:"type:text[]"`
	ApprovedBy       string          `gorm:"type:varchar(255)"`
	ApprovedAt       *time.Time      `gorm:"type:timestamptz"`
	DeclinedBy       string          `gorm:"type:varchar(255)"`
	DeclinedAt       *time.Time      `gorm:"type:timestamptz"`
	CompletedAt      *time.Time      `gorm:"type:timestamptz"`
	DeadlineAt       time.Time       `gorm:"not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:               m.ID,
		ChildID:          m.ChildID,
		ParentID:         m.ParentID,
		Title:            m.Title,
		Description:      m.Description,
		Category:         m.Category,
		Amount:           m.Amount,
		DurationWeeks:    m.DurationWeeks,
		Saved:            m.Saved,
		Status:           entity.GoalStatus(m.Status),
		KidName:          m.KidName,
		KidAvatar:        m.KidAvatar,
		AssignedChoreIDs: m.AssignedChoreIDs,
		ApprovedBy:       m.ApprovedBy,
		ApprovedAt:       m.ApprovedAt,
		DeclinedBy:       m.DeclinedBy,
		DeclinedAt:       m.DeclinedAt,
		CompletedAt:      m.CompletedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:               goal.ID,
		ChildID:          goal.ChildID,
		ParentID:         goal.ParentID,
		Title:            goal.Title,
		Description:      goal.Description,
		Category:         goal.Category,
		Amount:           goal.Amount,
		DurationWeeks:    goal.DurationWeeks,
		Saved:            goal.Saved,
		Status:           string(goal.Status),
		KidName:          goal.KidName,
		KidAvatar:        goal.KidAvatar,
		AssignedChoreIDs: goal.AssignedChoreIDs,
		ApprovedBy:       goal.ApprovedBy,
		ApprovedAt:       goal.ApprovedAt,
		DeclinedBy:       goal.DeclinedBy,
		DeclinedAt:       goal.DeclinedAt,
		CompletedAt:      goal.CompletedAt,
		DeadlineAt:       goal.Deadline(),
		CreatedAt:        goal.CreatedAt,
		UpdatedAt:        goal.UpdatedAt,
	}
}
