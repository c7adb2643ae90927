// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmissionStatus represents the review state of a progress submission.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusDeclined SubmissionStatus = "declined"
)

// ProgressSubmission is a batch report of chores a kid claims to have
// completed toward a goal, pending parent review. TotalEarned is always
// recomputed server-side from the referenced chore rewards, keyed by chore id.
type ProgressSubmission struct {
	ID             uuid.UUID
	GoalID         uuid.UUID
	ChildID        uuid.UUID
	ParentID       uuid.UUID
	ChoreIDs       []string
	TotalEarned    decimal.Decimal
	SubmissionDate time.Time
	Status         SubmissionStatus
	ReviewedBy     string
	ReviewedAt     *time.Time
	CreatedAt      time.Time
}

// NewProgressSubmission creates a pending progress submission.
func NewProgressSubmission(goalID, childID, parentID uuid.UUID, choreIDs []string, totalEarned decimal.Decimal, submissionDate time.Time) *ProgressSubmission {
	return &ProgressSubmission{
		ID:             uuid.New(),
		GoalID:         goalID,
		ChildID:        childID,
		ParentID:       parentID,
		ChoreIDs:       choreIDs,
		TotalEarned:    totalEarned,
		SubmissionDate: submissionDate,
		Status:         SubmissionStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
}

// Resolve marks the submission as reviewed.
func (s *ProgressSubmission) Resolve(status SubmissionStatus, reviewer string) {
	now := time.Now().UTC()
	s.Status = status
	s.ReviewedBy = reviewer
	s.ReviewedAt = &now
}
