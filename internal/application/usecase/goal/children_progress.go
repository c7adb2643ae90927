package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// ChildProgressSummary is one kid's savings overview for the parent dashboard.
type ChildProgressSummary struct {
	Child          *entity.Child
	Goals          []*entity.Goal
	CompletedGoals int
	ActiveGoals    int
	TotalSaved     decimal.Decimal
}

// ChildrenProgressInput represents the input for the children progress overview.
type ChildrenProgressInput struct {
	ParentID uuid.UUID
}

// ChildrenProgressOutput represents the output of the overview.
type ChildrenProgressOutput struct {
	Children []ChildProgressSummary
}

// ChildrenProgressUseCase builds the per-kid goal overview for a parent.
type ChildrenProgressUseCase struct {
	childRepo adapter.ChildRepository
	goalRepo  adapter.GoalRepository
}

// NewChildrenProgressUseCase creates a new ChildrenProgressUseCase instance.
func NewChildrenProgressUseCase(childRepo adapter.ChildRepository, goalRepo adapter.GoalRepository) *ChildrenProgressUseCase {
	return &ChildrenProgressUseCase{
		childRepo: childRepo,
		goalRepo:  goalRepo,
	}
}

// Execute assembles the overview.
func (uc *ChildrenProgressUseCase) Execute(ctx context.Context, input ChildrenProgressInput) (*ChildrenProgressOutput, error) {
	children, err := uc.childRepo.FindByParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	out := &ChildrenProgressOutput{Children: make([]ChildProgressSummary, 0, len(children))}
	for _, child := range children {
		goals, err := uc.goalRepo.FindByChild(ctx, child.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list goals for %s: %w", child.Username, err)
		}

		summary := ChildProgressSummary{
			Child:      child,
			Goals:      goals,
			TotalSaved: decimal.Zero,
		}
		for _, g := range goals {
			switch g.Status {
			case entity.GoalStatusCompleted:
				summary.CompletedGoals++
			case entity.GoalStatusApproved:
				summary.ActiveGoals++
			}
			summary.TotalSaved = summary.TotalSaved.Add(g.Saved)
		}
		out.Children = append(out.Children, summary)
	}

	return out, nil
}
