// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aidiy/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	GoalID            *string   `json:"goal_id,omitempty"`
	SubmissionID      *string   `json:"submission_id,omitempty"`
	KidUsername       string    `json:"kid_username,omitempty"`
	KidName           string    `json:"kid_name,omitempty"`
	KidAvatar         string    `json:"kid_avatar,omitempty"`
	EarnedAmount      float64   `json:"earned_amount"`
	CompletedChoreIDs []string  `json:"completed_chore_ids,omitempty"`
	Status            string    `json:"status"`
	Read              bool      `json:"read"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToNotificationResponse converts a domain Notification entity to a DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	response := NotificationResponse{
		ID:                n.ID.String(),
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		KidUsername:       n.KidUsername,
		KidName:           n.KidName,
		KidAvatar:         n.KidAvatar,
		EarnedAmount:      n.EarnedAmount.InexactFloat64(),
		CompletedChoreIDs: n.CompletedChoreIDs,
		Status:            string(n.Status),
		Read:              n.Read,
		CreatedAt:         n.CreatedAt,
	}
	if n.GoalID != nil {
		goalID := n.GoalID.String()
		response.GoalID = &goalID
	}
	if n.SubmissionID != nil {
		submissionID := n.SubmissionID.String()
		response.SubmissionID = &submissionID
	}
	return response
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Success       bool                   `json:"success"`
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// ToNotificationListResponse converts domain notifications to a list DTO.
func ToNotificationListResponse(notifications []*entity.Notification, unreadCount int64) NotificationListResponse {
	response := NotificationListResponse{
		Success:       true,
		Notifications: make([]NotificationResponse, len(notifications)),
		UnreadCount:   unreadCount,
	}
	for i, n := range notifications {
		response.Notifications[i] = ToNotificationResponse(n)
	}
	return response
}

// UnreadCountResponse represents the response for the unread counter.
type UnreadCountResponse struct {
	Success bool  `json:"success"`
	Count   int64 `json:"count"`
}

// MarkAllReadResponse represents the response after marking all notifications read.
type MarkAllReadResponse struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}
