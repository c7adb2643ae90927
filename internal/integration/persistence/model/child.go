// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ChildModel represents the children table in the database.
type ChildModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParentID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ParentEmail   string    `gorm:"type:varchar(255);not null;index"`
	Username      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	NickName      string    `gorm:"type:varchar(100)"`
	Avatar        string    `gorm:"type:varchar(20)"`
	BirthDate     string    `gorm:"type:varchar(20)"`
	LoginCodeHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the ChildModel.
func (ChildModel) TableName() string {
	return "children"
}

// ToEntity converts a ChildModel to a domain Child entity.
func (m *ChildModel) ToEntity() *entity.Child {
	return &entity.Child{
		ID:            m.ID,
		ParentID:      m.ParentID,
		ParentEmail:   m.ParentEmail,
		Username:      m.Username,
		FirstName:     m.FirstName,
		NickName:      m.NickName,
		Avatar:        m.Avatar,
		BirthDate:     m.BirthDate,
		LoginCodeHash: m.LoginCodeHash,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ChildFromEntity creates a ChildModel from a domain Child entity.
func ChildFromEntity(child *entity.Child) *ChildModel {
	return &ChildModel{
		ID:            child.ID,
		ParentID:      child.ParentID,
		ParentEmail:   child.ParentEmail,
		Username:      child.Username,
		FirstName:     child.FirstName,
		NickName:      child.NickName,
		Avatar:        child.Avatar,
		BirthDate:     child.BirthDate,
		LoginCodeHash: child.LoginCodeHash,
		CreatedAt:     child.CreatedAt,
		UpdatedAt:     child.UpdatedAt,
	}
}
