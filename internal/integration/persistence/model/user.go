// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email                  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName              string    `gorm:"type:varchar(100);not null"`
	LastName               string    `gorm:"type:varchar(100)"`
	PasswordHash           string    `gorm:"type:varchar(255)"`
	PhoneNumber            string    `gorm:"type:varchar(30)"`
	BirthDate              string    `gorm:"type:varchar(20)"`
	Avatar                 string    `gorm:"type:varchar(20)"`
	IsProfileComplete      bool      `gorm:"not null;default:false"`
	HasCompletedAssessment bool      `gorm:"not null;default:false"`
	VerifiedAt             time.Time `gorm:"not null"`
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                     m.ID,
		Email:                  m.Email,
		FirstName:              m.FirstName,
		LastName:               m.LastName,
		PasswordHash:           m.PasswordHash,
		PhoneNumber:            m.PhoneNumber,
		BirthDate:              m.BirthDate,
		Avatar:                 m.Avatar,
		IsProfileComplete:      m.IsProfileComplete,
		HasCompletedAssessment: m.HasCompletedAssessment,
		VerifiedAt:             m.VerifiedAt,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                     user.ID,
		Email:                  user.Email,
		FirstName:              user.FirstName,
		LastName:               user.LastName,
		PasswordHash:           user.PasswordHash,
		PhoneNumber:            user.PhoneNumber,
		BirthDate:              user.BirthDate,
		Avatar:                 user.Avatar,
		IsProfileComplete:      user.IsProfileComplete,
		HasCompletedAssessment: user.HasCompletedAssessment,
		VerifiedAt:             user.VerifiedAt,
		CreatedAt:              user.CreatedAt,
		UpdatedAt:              user.UpdatedAt,
	}
}

// PendingUserModel represents the pending_users table: registrations awaiting
// email verification.
type PendingUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  string    `gorm:"type:varchar(30)"`
	Avatar       string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the PendingUserModel.
func (PendingUserModel) TableName() string {
	return "pending_users"
}

// ToEntity converts a PendingUserModel to a domain PendingUser entity.
func (m *PendingUserModel) ToEntity() *entity.PendingUser {
	return &entity.PendingUser{
		ID:           m.ID,
		Email:        m.Email,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		PasswordHash: m.PasswordHash,
		PhoneNumber:  m.PhoneNumber,
		Avatar:       m.Avatar,
		CreatedAt:    m.CreatedAt,
	}
}

// PendingUserFromEntity creates a PendingUserModel from a domain PendingUser entity.
func PendingUserFromEntity(pending *entity.PendingUser) *PendingUserModel {
	return &PendingUserModel{
		ID:           pending.ID,
		Email:        pending.Email,
		FirstName:    pending.FirstName,
		LastName:     pending.LastName,
		PasswordHash: pending.PasswordHash,
		PhoneNumber:  pending.PhoneNumber,
		Avatar:       pending.Avatar,
		CreatedAt:    pending.CreatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	SubjectID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
