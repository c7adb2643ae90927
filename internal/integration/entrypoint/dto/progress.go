// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aidiy/backend/internal/domain/entity"
)

// SubmitProgressRequest represents the request body for progress submission.
type SubmitProgressRequest struct {
	GoalID         string   `json:"goal_id" binding:"required,uuid"`
	ChoreIDs       []string `json:"chore_ids" binding:"required,min=1"`
	SubmissionDate string   `json:"submission_date"`
}

// SubmissionResponse represents a progress submission in API responses.
type SubmissionResponse struct {
	ID             string    `json:"id"`
	GoalID         string    `json:"goal_id"`
	ChoreIDs       []string  `json:"chore_ids"`
	TotalEarned    float64   `json:"total_earned"`
	Status         string    `json:"status"`
	SubmissionDate time.Time `json:"submission_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToSubmissionResponse converts a domain submission to a DTO.
func ToSubmissionResponse(s *entity.ProgressSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:             s.ID.String(),
		GoalID:         s.GoalID.String(),
		ChoreIDs:       s.ChoreIDs,
		TotalEarned:    s.TotalEarned.InexactFloat64(),
		Status:         string(s.Status),
		SubmissionDate: s.SubmissionDate,
		CreatedAt:      s.CreatedAt,
	}
}

// SubmitProgressResponse represents the response after a progress submission.
type SubmitProgressResponse struct {
	Success    bool               `json:"success"`
	Submission SubmissionResponse `json:"submission"`
}

// ApproveProgressResponse represents the response after approving a submission.
type ApproveProgressResponse struct {
	Success            bool    `json:"success"`
	NewSaved           string  `json:"new_saved"`
	NewProgress        float64 `json:"new_progress"`
	GoalCompleted      bool    `json:"goal_completed"`
	ArchivedChores     int     `json:"archived_chores"`
	CanSelectNewChores bool    `json:"can_select_new_chores"`
}

// DeclineProgressResponse represents the response after declining a submission.
type DeclineProgressResponse struct {
	Success            bool     `json:"success"`
	KidID              string   `json:"kid_id"`
	GoalID             string   `json:"goal_id"`
	ReassignedChoreIDs []string `json:"reassigned_chore_ids"`
}
