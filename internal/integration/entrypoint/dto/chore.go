// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/application/usecase/chore"
	"github.com/aidiy/backend/internal/domain/entity"
)

// CreateChoreRequest represents the request body for chore creation.
type CreateChoreRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Difficulty  string  `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Reward      float64 `json:"reward" binding:"required,gt=0"`
	DueDate     string  `json:"due_date" binding:"required"`
	AssignedTo  string  `json:"assigned_to"`
}

// UpdateChoreRequest represents the request body for chore updates.
type UpdateChoreRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Difficulty  *string  `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard"`
	Reward      *float64 `json:"reward,omitempty" binding:"omitempty,gt=0"`
	DueDate     *string  `json:"due_date,omitempty"`
	Status      *string  `json:"status,omitempty"`
	AssignedTo  *string  `json:"assigned_to,omitempty"`
}

// AssignToGoalRequest represents the request body for claiming chores for a goal.
type AssignToGoalRequest struct {
	GoalID   string   `json:"goal_id" binding:"required,uuid"`
	ChoreIDs []string `json:"chore_ids" binding:"required,min=1"`
}

// ChoreResponse represents a single chore in API responses.
type ChoreResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Difficulty     string     `json:"difficulty"`
	Reward         float64    `json:"reward"`
	DueDate        string     `json:"due_date"`
	Status         string     `json:"status"`
	AssignedTo     string     `json:"assigned_to"`
	AssignedGoalID *string    `json:"assigned_goal_id,omitempty"`
	IsActive       bool       `json:"is_active"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToChoreResponse converts a domain Chore entity to a ChoreResponse DTO.
func ToChoreResponse(c *entity.Chore) ChoreResponse {
	response := ChoreResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Difficulty:  string(c.Difficulty),
		Reward:      c.Reward.InexactFloat64(),
		DueDate:     c.DueDate,
		Status:      string(c.Status),
		AssignedTo:  c.KidUsername,
		IsActive:    c.IsActive,
		SubmittedAt: c.SubmittedAt,
		CreatedAt:   c.CreatedAt,
	}
	if c.AssignedGoalID != nil {
		goalID := c.AssignedGoalID.String()
		response.AssignedGoalID = &goalID
	}
	return response
}

// ChoreListResponse represents the response for listing chores.
type ChoreListResponse struct {
	Success bool            `json:"success"`
	Chores  []ChoreResponse `json:"chores"`
}

// ToChoreListResponse converts domain chores to a ChoreListResponse DTO.
func ToChoreListResponse(chores []*entity.Chore) ChoreListResponse {
	response := ChoreListResponse{
		Success: true,
		Chores:  make([]ChoreResponse, len(chores)),
	}
	for i, c := range chores {
		response.Chores[i] = ToChoreResponse(c)
	}
	return response
}

// ChoreMutationResponse represents the response after creating or updating a chore.
type ChoreMutationResponse struct {
	Success bool          `json:"success"`
	Chore   ChoreResponse `json:"chore"`
}

// AssignToGoalResponse represents the response after claiming chores for a goal.
type AssignToGoalResponse struct {
	Success  bool            `json:"success"`
	Goal     GoalResponse    `json:"goal"`
	Assigned []ChoreResponse `json:"assigned"`
}

// ChoreRecommendationResponse represents one AI-suggested chore.
type ChoreRecommendationResponse struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	Reward      float64 `json:"reward"`
	DueDate     string  `json:"due_date"`
}

// RecommendationsResponse represents the response for chore recommendations.
type RecommendationsResponse struct {
	Success         bool                          `json:"success"`
	Recommendations []ChoreRecommendationResponse `json:"recommendations"`
}

// ToRecommendationsResponse converts AI recommendations to a DTO.
func ToRecommendationsResponse(recommendations []adapter.ChoreRecommendation) RecommendationsResponse {
	response := RecommendationsResponse{
		Success:         true,
		Recommendations: make([]ChoreRecommendationResponse, len(recommendations)),
	}
	for i, r := range recommendations {
		response.Recommendations[i] = ChoreRecommendationResponse{
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Difficulty:  r.Difficulty,
			Reward:      r.Reward,
			DueDate:     r.DueDate,
		}
	}
	return response
}

// ChildChoresResponse summarizes one kid's chores for the parent dashboard.
type ChildChoresResponse struct {
	Kid            ChildResponse   `json:"kid"`
	AssignedChores []ChoreResponse `json:"assigned_chores"`
	Completed      int             `json:"completed"`
	Pending        int             `json:"pending"`
	TotalEarned    float64         `json:"total_earned"`
}

// ChildrenChoresResponse represents the response for the parent chores overview.
type ChildrenChoresResponse struct {
	Success  bool                  `json:"success"`
	Children []ChildChoresResponse `json:"children"`
}

// ToChildrenChoresResponse converts the overview output to a DTO.
func ToChildrenChoresResponse(summaries []chore.ChildChoresSummary) ChildrenChoresResponse {
	response := ChildrenChoresResponse{
		Success:  true,
		Children: make([]ChildChoresResponse, len(summaries)),
	}
	for i, s := range summaries {
		assigned := make([]ChoreResponse, len(s.AssignedChores))
		for j, c := range s.AssignedChores {
			assigned[j] = ToChoreResponse(c)
		}
		response.Children[i] = ChildChoresResponse{
			Kid:            ToChildResponse(s.Child),
			AssignedChores: assigned,
			Completed:      s.Completed,
			Pending:        s.Pending,
			TotalEarned:    s.TotalEarned.InexactFloat64(),
		}
	}
	return response
}
