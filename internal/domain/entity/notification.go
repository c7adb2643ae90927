// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationType identifies the lifecycle event a notification reports.
type NotificationType string

const (
	NotificationGoalApprovalRequest NotificationType = "goal_approval_request"
	NotificationProgressSubmission  NotificationType = "progress_submission"
	NotificationGoalCompleted       NotificationType = "goal_completed"
	NotificationGoalExpired         NotificationType = "goal_expired"
	NotificationProgressApproved    NotificationType = "progress_approved"
	NotificationProgressDeclined    NotificationType = "progress_declined"
)

// NotificationStatus tracks the resolution state of actionable notifications.
type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "pending"
	NotificationStatusApproved NotificationStatus = "approved"
	NotificationStatusDeclined NotificationStatus = "declined"
	NotificationStatusSuccess  NotificationStatus = "success"
)

// Notification is an in-app message created by goal/progress lifecycle events.
// Read state is toggled when the recipient opens the notification panel.
type Notification struct {
	ID                uuid.UUID
	RecipientEmail    string
	Type              NotificationType
	Title             string
	Message           string
	GoalID            *uuid.UUID
	SubmissionID      *uuid.UUID
	KidUsername       string
	KidName           string
	KidAvatar         string
	EarnedAmount      decimal.Decimal
	CompletedChoreIDs []string
	Status            NotificationStatus
	Read              bool
	CreatedAt         time.Time
}

// NewNotification creates a notification in the given initial status.
func NewNotification(recipientEmail string, typ NotificationType, title, message string, status NotificationStatus) *Notification {
	return &Notification{
		ID:             uuid.New(),
		RecipientEmail: recipientEmail,
		Type:           typ,
		Title:          title,
		Message:        message,
		Status:         status,
		Read:           false,
		CreatedAt:      time.Now().UTC(),
	}
}
