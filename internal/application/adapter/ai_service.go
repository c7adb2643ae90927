// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ChoreRecommendation is an AI-suggested chore for a family.
type ChoreRecommendation struct {
	Title       string
	Description string
	Category    string
	Difficulty  string
	Reward      float64
	DueDate     string
}

// RecommendChoresRequest carries the family context used to tailor suggestions.
type RecommendChoresRequest struct {
	ChildNames []string
	ChildAges  []int
	GoalTitles []string
}

// AIService defines the interface for the generative AI backend.
type AIService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// RecommendChores suggests age-appropriate chores for the family.
	RecommendChores(ctx context.Context, request RecommendChoresRequest) ([]ChoreRecommendation, error)

	// Chat produces the assistant's reply for the next turn of a session.
	Chat(ctx context.Context, history []entity.ChatMessage, message string) (string, error)
}
