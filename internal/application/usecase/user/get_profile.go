// Package user contains profile and children management use cases.
package user

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// KidFinancialInfo summarizes a kid's savings for the profile view.
type KidFinancialInfo struct {
	TotalSavings   decimal.Decimal
	TotalGoals     int
	ActiveGoals    int
	CompletedGoals int
}

// GetProfileInput represents the input for the profile view. Exactly one of
// Email (parent) or KidUsername is set, matching the token role.
type GetProfileInput struct {
	Email       string
	KidUsername string
}

// GetProfileOutput represents the output of the profile view.
type GetProfileOutput struct {
	User          *entity.User
	Child         *entity.Child
	FinancialInfo *KidFinancialInfo
}

// GetProfileUseCase loads the authenticated user's profile. Kid profiles are
// enriched with a savings summary derived from their goals.
type GetProfileUseCase struct {
	userRepo  adapter.UserRepository
	childRepo adapter.ChildRepository
	goalRepo  adapter.GoalRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(
	userRepo adapter.UserRepository,
	childRepo adapter.ChildRepository,
	goalRepo adapter.GoalRepository,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:  userRepo,
		childRepo: childRepo,
		goalRepo:  goalRepo,
	}
}

// Execute loads the profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	if input.KidUsername != "" {
		return uc.kidProfile(ctx, input.KidUsername)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}
	return &GetProfileOutput{User: user}, nil
}

func (uc *GetProfileUseCase) kidProfile(ctx context.Context, username string) (*GetProfileOutput, error) {
	child, err := uc.childRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	goals, err := uc.goalRepo.FindByChild(ctx, child.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	info := &KidFinancialInfo{TotalSavings: decimal.Zero, TotalGoals: len(goals)}
	for _, g := range goals {
		info.TotalSavings = info.TotalSavings.Add(g.Saved)
		switch g.Status {
		case entity.GoalStatusApproved:
			info.ActiveGoals++
		case entity.GoalStatusCompleted:
			info.CompletedGoals++
		}
	}

	return &GetProfileOutput{Child: child, FinancialInfo: info}, nil
}
