// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChoreStatus represents the lifecycle state of a chore.
type ChoreStatus string

const (
	// ChoreStatusPending means the chore exists but has no assignee yet.
	ChoreStatusPending ChoreStatus = "pending"
	// ChoreStatusAssigned means the chore is assigned to a kid (and possibly
	// claimed by a goal via AssignedGoalID).
	ChoreStatusAssigned ChoreStatus = "assigned"
	// ChoreStatusPendingApproval means the kid submitted the chore as done and
	// a parent review is outstanding.
	ChoreStatusPendingApproval ChoreStatus = "pending_approval"
	ChoreStatusCompleted       ChoreStatus = "completed"
	ChoreStatusArchived        ChoreStatus = "archived"
)

// ChoreDifficulty is the parent-assigned difficulty label. Unknown values are
// tolerated and passed through unchanged.
type ChoreDifficulty string

const (
	ChoreDifficultyEasy   ChoreDifficulty = "Easy"
	ChoreDifficultyMedium ChoreDifficulty = "Medium"
	ChoreDifficultyHard   ChoreDifficulty = "Hard"
)

// Chore represents a discrete rewarded task. A chore is claimed by at most one
// active goal at a time (AssignedGoalID).
type Chore struct {
	ID             uuid.UUID
	ParentID       uuid.UUID
	ChildID        *uuid.UUID
	KidUsername    string
	Title          string
	Description    string
	Category       string
	Difficulty     ChoreDifficulty
	Reward         decimal.Decimal
	DueDate        string
	Status         ChoreStatus
	AssignedGoalID *uuid.UUID
	IsActive       bool
	SubmittedAt    *time.Time
	ArchivedAt     *time.Time
	ApprovedBy     string
	DeclinedBy     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewChore creates a new Chore entity. When a kid is assigned at creation time
// the chore starts out assigned, otherwise pending.
func NewChore(parentID uuid.UUID, childID *uuid.UUID, kidUsername, title, description, category string, difficulty ChoreDifficulty, reward decimal.Decimal, dueDate string) *Chore {
	now := time.Now().UTC()
	status := ChoreStatusPending
	if kidUsername != "" {
		status = ChoreStatusAssigned
	}
	return &Chore{
		ID:          uuid.New(),
		ParentID:    parentID,
		ChildID:     childID,
		KidUsername: kidUsername,
		Title:       title,
		Description: description,
		Category:    category,
		Difficulty:  difficulty,
		Reward:      reward,
		DueDate:     dueDate,
		Status:      status,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsSelectable reports whether the chore can still be picked for a goal:
// assigned or pending, and not yet claimed by any goal.
func (c *Chore) IsSelectable() bool {
	return (c.Status == ChoreStatusAssigned || c.Status == ChoreStatusPending) && c.AssignedGoalID == nil
}

// ClaimForGoal marks the chore as assigned to the given goal.
func (c *Chore) ClaimForGoal(goalID uuid.UUID) {
	c.AssignedGoalID = &goalID
	c.Status = ChoreStatusAssigned
	c.UpdatedAt = time.Now().UTC()
}
