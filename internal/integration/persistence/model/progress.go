// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ProgressSubmissionModel represents the progress_submissions table.
type ProgressSubmissionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChildID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ParentID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChoreIDs       pq.StringArray  `gorm:"type:text[];not null"`
	TotalEarned    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SubmissionDate time.Time       `gorm:"not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	ReviewedBy     string          `gorm:"type:varchar(255)"`
	ReviewedAt     *time.Time      `gorm:"type:timestamptz"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProgressSubmissionModel.
func (ProgressSubmissionModel) TableName() string {
	return "progress_submissions"
}

// ToEntity converts a ProgressSubmissionModel to a domain entity.
func (m *ProgressSubmissionModel) ToEntity() *entity.ProgressSubmission {
	return &entity.ProgressSubmission{
		ID:             m.ID,
		GoalID:         m.GoalID,
		ChildID:        m.ChildID,
		ParentID:       m.ParentID,
		ChoreIDs:       m.ChoreIDs,
		TotalEarned:    m.TotalEarned,
		SubmissionDate: m.SubmissionDate,
		Status:         entity.SubmissionStatus(m.Status),
		ReviewedBy:     m.ReviewedBy,
		ReviewedAt:     m.ReviewedAt,
		CreatedAt:      m.CreatedAt,
	}
}

// ProgressSubmissionFromEntity creates a model from a domain entity.
func ProgressSubmissionFromEntity(s *entity.ProgressSubmission) *ProgressSubmissionModel {
	return &ProgressSubmissionModel{
		ID:             s.ID,
		GoalID:         s.GoalID,
		ChildID:        s.ChildID,
		ParentID:       s.ParentID,
		ChoreIDs:       s.ChoreIDs,
		TotalEarned:    s.TotalEarned,
		SubmissionDate: s.SubmissionDate,
		Status:         string(s.Status),
		ReviewedBy:     s.ReviewedBy,
		ReviewedAt:     s.ReviewedAt,
		CreatedAt:      s.CreatedAt,
	}
}
