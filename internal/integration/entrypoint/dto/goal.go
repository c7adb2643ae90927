// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aidiy/backend/internal/application/usecase/goal"
	"github.com/aidiy/backend/internal/domain/entity"
	"github.com/aidiy/backend/internal/domain/valueobject"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=255"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	DurationWeeks int     `json:"duration_weeks" binding:"omitempty,gt=0"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID               string     `json:"id"`
	ChildID          string     `json:"child_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Amount           float64    `json:"amount"`
	Saved            float64    `json:"saved"`
	Progress         float64    `json:"progress"`
	DurationWeeks    int        `json:"duration_weeks"`
	Status           string     `json:"status"`
	KidName          string     `json:"kid_name"`
	KidAvatar        string     `json:"kid_avatar"`
	AssignedChoreIDs []string   `json:"assigned_chore_ids"`
	Deadline         time.Time  `json:"deadline"`
	ApprovedBy       string     `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	choreIDs := g.AssignedChoreIDs
	if choreIDs == nil {
		choreIDs = []string{}
	}
	return GoalResponse{
		ID:               g.ID.String(),
		ChildID:          g.ChildID.String(),
		Title:            g.Title,
		Description:      g.Description,
		Category:         g.Category,
		Amount:           g.Amount.InexactFloat64(),
		Saved:            g.Saved.InexactFloat64(),
		Progress:         g.Progress(),
		DurationWeeks:    g.DurationWeeks,
		Status:           string(g.Status),
		KidName:          g.KidName,
		KidAvatar:        g.KidAvatar,
		AssignedChoreIDs: choreIDs,
		Deadline:         g.Deadline(),
		ApprovedBy:       g.ApprovedBy,
		ApprovedAt:       g.ApprovedAt,
		CompletedAt:      g.CompletedAt,
		CreatedAt:        g.CreatedAt,
	}
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Success bool           `json:"success"`
	Goals   []GoalResponse `json:"goals"`
}

// ToGoalListResponse converts domain goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	response := GoalListResponse{
		Success: true,
		Goals:   make([]GoalResponse, len(goals)),
	}
	for i, g := range goals {
		response.Goals[i] = ToGoalResponse(g)
	}
	return response
}

// GoalMutationResponse represents the response after creating or reviewing a goal.
type GoalMutationResponse struct {
	Success bool         `json:"success"`
	Goal    GoalResponse `json:"goal"`
}

// QuestChoreResponse represents a chore decorated for the kid-facing quest view.
type QuestChoreResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Difficulty  string  `json:"difficulty"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
}

// ToQuestChoreResponses converts quest chores to DTOs.
func ToQuestChoreResponses(chores []valueobject.QuestChore) []QuestChoreResponse {
	responses := make([]QuestChoreResponse, len(chores))
	for i, c := range chores {
		responses[i] = QuestChoreResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Amount:      c.Amount.InexactFloat64(),
			Difficulty:  c.Difficulty,
			DueDate:     c.DueDate,
			Status:      string(c.Status),
			Category:    c.Category,
		}
	}
	return responses
}

// QuestViewResponse represents the server-computed chore selection view for a goal.
type QuestViewResponse struct {
	Success          bool                 `json:"success"`
	Goal             GoalResponse         `json:"goal"`
	AvailableChores  []QuestChoreResponse `json:"available_chores"`
	SelectedChores   []QuestChoreResponse `json:"selected_chores"`
	SavedPct         float64              `json:"saved_pct"`
	PotentialPct     float64              `json:"potential_pct"`
	PotentialEarning string               `json:"potential_earning"`
}

// ProgressViewResponse represents the server-computed weekly progress view.
type ProgressViewResponse struct {
	Success       bool                 `json:"success"`
	Goal          GoalResponse         `json:"goal"`
	State         string               `json:"state"`
	ChoreStatuses map[string]string    `json:"chore_statuses"`
	Chores        []QuestChoreResponse `json:"chores"`
	Deadline      DeadlineResponse     `json:"deadline"`
}

// DeadlineResponse describes how much of the goal's window remains.
type DeadlineResponse struct {
	Deadline      time.Time `json:"deadline"`
	DaysRemaining int       `json:"days_remaining"`
	Warning       bool      `json:"warning"`
	Passed        bool      `json:"passed"`
}

// ToDeadlineResponse converts a deadline status to a DTO.
func ToDeadlineResponse(d valueobject.DeadlineStatus) DeadlineResponse {
	return DeadlineResponse{
		Deadline:      d.Deadline,
		DaysRemaining: d.DaysRemaining,
		Warning:       d.Warning,
		Passed:        d.Passed,
	}
}

// ChildProgressResponse summarizes one kid's goals for the parent dashboard.
type ChildProgressResponse struct {
	Kid            ChildResponse  `json:"kid"`
	Goals          []GoalResponse `json:"goals"`
	CompletedGoals int            `json:"completed_goals"`
	ActiveGoals    int            `json:"active_goals"`
	TotalSaved     float64        `json:"total_saved"`
}

// ChildrenProgressResponse represents the response for the parent progress overview.
type ChildrenProgressResponse struct {
	Success  bool                    `json:"success"`
	Children []ChildProgressResponse `json:"children"`
}

// ToChildrenProgressResponse converts the overview output to a DTO.
func ToChildrenProgressResponse(summaries []goal.ChildProgressSummary) ChildrenProgressResponse {
	response := ChildrenProgressResponse{
		Success:  true,
		Children: make([]ChildProgressResponse, len(summaries)),
	}
	for i, s := range summaries {
		goals := make([]GoalResponse, len(s.Goals))
		for j, g := range s.Goals {
			goals[j] = ToGoalResponse(g)
		}
		response.Children[i] = ChildProgressResponse{
			Kid:            ToChildResponse(s.Child),
			Goals:          goals,
			CompletedGoals: s.CompletedGoals,
			ActiveGoals:    s.ActiveGoals,
			TotalSaved:     s.TotalSaved.InexactFloat64(),
		}
	}
	return response
}
