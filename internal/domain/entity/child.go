// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Child represents a kid account attached to a parent.
// Kids authenticate with their username and a short login code.
type Child struct {
	ID            uuid.UUID
	ParentID      uuid.UUID
	ParentEmail   string
	Username      string
	FirstName     string
	NickName      string
	Avatar        string
	BirthDate     string
	LoginCodeHash string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewChild creates a new Child entity.
func NewChild(parentID uuid.UUID, parentEmail, username, firstName, nickName, avatar, birthDate, loginCodeHash string) *Child {
	now := time.Now().UTC()
	if avatar == "" {
		avatar = "👧"
	}
	return &Child{
		ID:            uuid.New(),
		ParentID:      parentID,
		ParentEmail:   parentEmail,
		Username:      username,
		FirstName:     firstName,
		NickName:      nickName,
		Avatar:        avatar,
		BirthDate:     birthDate,
		LoginCodeHash: loginCodeHash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DisplayName returns the kid's preferred display name.
func (c *Child) DisplayName() string {
	if c.NickName != "" {
		return c.NickName
	}
	return c.FirstName
}

// KidInboxAddress derives the synthetic address used as a kid's notification
// inbox and token subject. Kids have no real mailbox.
func KidInboxAddress(username string) string {
	return username + "@kids.aidiy"
}

// InboxAddress returns the child's synthetic notification address.
func (c *Child) InboxAddress() string {
	return KidInboxAddress(c.Username)
}
