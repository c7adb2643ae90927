// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
// Transitions are monotonic: pending_approval → approved|declined,
// approved → completed|archived. There is no path back.
type GoalStatus string

const (
	GoalStatusPendingApproval GoalStatus = "pending_approval"
	GoalStatusApproved        GoalStatus = "approved"
	GoalStatusDeclined        GoalStatus = "declined"
	GoalStatusCompleted       GoalStatus = "completed"
	GoalStatusArchived        GoalStatus = "archived"
)

// Goal represents a savings target proposed by a kid and reviewed by a parent.
type Goal struct {
	ID               uuid.UUID
	ChildID          uuid.UUID
	ParentID         uuid.UUID
	Title            string
	Description      string
	Category         string
	Amount           decimal.Decimal // target in currency units
	DurationWeeks    int
	Saved            decimal.Decimal
	Status           GoalStatus
	KidName          string
	KidAvatar        string
	AssignedChoreIDs []string
	ApprovedBy       string
	ApprovedAt       *time.Time
	DeclinedBy       string
	DeclinedAt       *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewGoal creates a new Goal entity in pending_approval state.
func NewGoal(childID, parentID uuid.UUID, title, description, category string, amount decimal.Decimal, durationWeeks int, kidName, kidAvatar string) *Goal {
	now := time.Now().UTC()
	if durationWeeks <= 0 {
		durationWeeks = 10
	}
	return &Goal{
		ID:            uuid.New(),
		ChildID:       childID,
		ParentID:      parentID,
		Title:         title,
		Description:   description,
		Category:      category,
		Amount:        amount,
		DurationWeeks: durationWeeks,
		Saved:         decimal.Zero,
		Status:        GoalStatusPendingApproval,
		KidName:       kidName,
		KidAvatar:     kidAvatar,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Deadline returns the moment the goal's time window lapses.
func (g *Goal) Deadline() time.Time {
	return g.CreatedAt.Add(time.Duration(g.DurationWeeks) * 7 * 24 * time.Hour)
}

// IsExpired reports whether the goal's window has lapsed without the target
// being reached.
func (g *Goal) IsExpired(now time.Time) bool {
	return g.Status == GoalStatusApproved && now.After(g.Deadline()) && g.Saved.LessThan(g.Amount)
}

// Progress returns the saved amount as a percentage of the target, capped at 100.
func (g *Goal) Progress() float64 {
	if !g.Amount.IsPositive() {
		return 0
	}
	pct, _ := g.Saved.Div(g.Amount).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	return pct
}

// Credit adds earned to the saved amount, capped so saved never exceeds the
// target, and reports whether this credit completed the goal.
func (g *Goal) Credit(earned decimal.Decimal) (completed bool) {
	before := g.Saved
	next := g.Saved.Add(earned)
	if next.GreaterThan(g.Amount) {
		next = g.Amount
	}
	g.Saved = next
	g.UpdatedAt = time.Now().UTC()
	return g.Saved.GreaterThanOrEqual(g.Amount) && before.LessThan(g.Amount)
}
