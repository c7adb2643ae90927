package chore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// ChildChoresSummary is one kid's chore overview for the parent dashboard.
type ChildChoresSummary struct {
	Child          *entity.Child
	AssignedChores []*entity.Chore
	Completed      int
	Pending        int
	TotalEarned    decimal.Decimal
}

// ChildrenChoresInput represents the input for the children chores overview.
type ChildrenChoresInput struct {
	ParentID uuid.UUID
}

// ChildrenChoresOutput represents the output of the overview.
type ChildrenChoresOutput struct {
	Children []ChildChoresSummary
}

// ChildrenChoresUseCase builds the per-kid chore overview for a parent.
// Archived chores count as completed: approval archives the chore and credits
// its reward.
type ChildrenChoresUseCase struct {
	childRepo adapter.ChildRepository
	choreRepo adapter.ChoreRepository
}

// NewChildrenChoresUseCase creates a new ChildrenChoresUseCase instance.
func NewChildrenChoresUseCase(childRepo adapter.ChildRepository, choreRepo adapter.ChoreRepository) *ChildrenChoresUseCase {
	return &ChildrenChoresUseCase{
		childRepo: childRepo,
		choreRepo: choreRepo,
	}
}

// Execute assembles the overview.
func (uc *ChildrenChoresUseCase) Execute(ctx context.Context, input ChildrenChoresInput) (*ChildrenChoresOutput, error) {
	children, err := uc.childRepo.FindByParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	out := &ChildrenChoresOutput{Children: make([]ChildChoresSummary, 0, len(children))}
	for _, child := range children {
		chores, err := uc.choreRepo.List(ctx, adapter.ChoreFilter{
			KidUsername:     child.Username,
			IncludeInactive: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list chores for %s: %w", child.Username, err)
		}

		summary := ChildChoresSummary{
			Child:       child,
			TotalEarned: decimal.Zero,
		}
		for _, c := range chores {
			switch c.Status {
			case entity.ChoreStatusCompleted, entity.ChoreStatusArchived:
				summary.Completed++
				summary.TotalEarned = summary.TotalEarned.Add(c.Reward)
			case entity.ChoreStatusPending, entity.ChoreStatusAssigned, entity.ChoreStatusPendingApproval:
				summary.Pending++
			}
			if c.IsActive {
				summary.AssignedChores = append(summary.AssignedChores, c)
			}
		}
		out.Children = append(out.Children, summary)
	}

	return out, nil
}
