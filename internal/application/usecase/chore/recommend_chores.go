package chore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// RecommendChoresInput represents the input for chore recommendations.
type RecommendChoresInput struct {
	ParentID uuid.UUID
}

// RecommendChoresOutput represents the output of chore recommendations.
type RecommendChoresOutput struct {
	Recommendations []adapter.ChoreRecommendation
}

// RecommendChoresUseCase suggests chores tailored to the family. It asks the
// AI backend when one is configured and falls back to a static set otherwise,
// so the endpoint always answers.
type RecommendChoresUseCase struct {
	aiService adapter.AIService
	childRepo adapter.ChildRepository
	goalRepo  adapter.GoalRepository
	logger    *slog.Logger
}

// NewRecommendChoresUseCase creates a new RecommendChoresUseCase instance.
func NewRecommendChoresUseCase(
	aiService adapter.AIService,
	childRepo adapter.ChildRepository,
	goalRepo adapter.GoalRepository,
	logger *slog.Logger,
) *RecommendChoresUseCase {
	return &RecommendChoresUseCase{
		aiService: aiService,
		childRepo: childRepo,
		goalRepo:  goalRepo,
		logger:    logger,
	}
}

// Execute returns chore suggestions for the parent's family.
func (uc *RecommendChoresUseCase) Execute(ctx context.Context, input RecommendChoresInput) (*RecommendChoresOutput, error) {
	if !uc.aiService.IsAvailable() {
		return &RecommendChoresOutput{Recommendations: fallbackRecommendations()}, nil
	}

	request := adapter.RecommendChoresRequest{}
	if children, err := uc.childRepo.FindByParent(ctx, input.ParentID); err == nil {
		for _, child := range children {
			request.ChildNames = append(request.ChildNames, child.DisplayName())
			if age, ok := ageFromBirthDate(child.BirthDate); ok {
				request.ChildAges = append(request.ChildAges, age)
			}
		}
	}
	if goals, err := uc.goalRepo.FindByParent(ctx, input.ParentID); err == nil {
		for _, g := range goals {
			if g.Status == entity.GoalStatusApproved {
				request.GoalTitles = append(request.GoalTitles, g.Title)
			}
		}
	}

	recommendations, err := uc.aiService.RecommendChores(ctx, request)
	if err != nil || len(recommendations) == 0 {
		if err != nil {
			uc.logger.Warn("chore recommendation fell back to static set", "error", err)
		}
		return &RecommendChoresOutput{Recommendations: fallbackRecommendations()}, nil
	}

	return &RecommendChoresOutput{Recommendations: recommendations}, nil
}

func ageFromBirthDate(birthDate string) (int, bool) {
	t, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, false
	}
	years := int(time.Since(t).Hours() / (24 * 365.25))
	if years < 0 || years > 21 {
		return 0, false
	}
	return years, true
}

// fallbackRecommendations is the static suggestion set served while no AI
// backend is configured or when it errors.
func fallbackRecommendations() []adapter.ChoreRecommendation {
	due := time.Now().AddDate(0, 0, 7).Format("Jan 2, 2006")
	return []adapter.ChoreRecommendation{
		{
			Title:       "Learn to make pancakes",
			Description: "Follow the recipe and make pancakes for family breakfast",
			Category:    "Kitchen",
			Difficulty:  "Hard",
			Reward:      8.00,
			DueDate:     due,
		},
		{
			Title:       "Help with dishes",
			Description: "Load dishwasher and wipe down counters",
			Category:    "Kitchen",
			Difficulty:  "Medium",
			Reward:      5.00,
			DueDate:     due,
		},
		{
			Title:       "Clean bedroom",
			Description: "Make bed, organize toys, and put clothes away",
			Category:    "Cleaning",
			Difficulty:  "Easy",
			Reward:      2.00,
			DueDate:     due,
		},
		{
			Title:       "Take out trash",
			Description: "Empty the bins and take the bags to the curb",
			Category:    "Cleaning",
			Difficulty:  "Easy",
			Reward:      2.00,
			DueDate:     due,
		},
	}
}
