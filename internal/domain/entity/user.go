// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a parent account in the AIDIY system.
type User struct {
	ID                     uuid.UUID
	Email                  string
	FirstName              string
	LastName               string
	PasswordHash           string
	PhoneNumber            string
	BirthDate              string
	Avatar                 string
	IsProfileComplete      bool
	HasCompletedAssessment bool
	VerifiedAt             time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Name returns the user's full display name.
func (u *User) Name() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// PendingUser represents a registration awaiting email verification.
// It is promoted to a User once the verification OTP is confirmed.
type PendingUser struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	PhoneNumber  string
	Avatar       string
	CreatedAt    time.Time
}

// NewPendingUser creates a new PendingUser entity.
func NewPendingUser(email, firstName, lastName, passwordHash, phoneNumber, avatar string) *PendingUser {
	if avatar == "" {
		avatar = "🙂"
	}
	return &PendingUser{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		PhoneNumber:  phoneNumber,
		Avatar:       avatar,
		CreatedAt:    time.Now().UTC(),
	}
}

// Promote converts a verified pending registration into a full User.
func (p *PendingUser) Promote() *User {
	now := time.Now().UTC()
	return &User{
		ID:           p.ID,
		Email:        p.Email,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		PasswordHash: p.PasswordHash,
		PhoneNumber:  p.PhoneNumber,
		Avatar:       p.Avatar,
		VerifiedAt:   now,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    now,
	}
}
