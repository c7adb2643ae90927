package user

import (
	"context"
	"fmt"
	"time"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// CompleteAssessmentInput represents the input for flagging the assessment.
type CompleteAssessmentInput struct {
	Email string
}

// CompleteAssessmentUseCase flags the parent's onboarding assessment as done.
type CompleteAssessmentUseCase struct {
	userRepo adapter.UserRepository
}

// NewCompleteAssessmentUseCase creates a new CompleteAssessmentUseCase instance.
func NewCompleteAssessmentUseCase(userRepo adapter.UserRepository) *CompleteAssessmentUseCase {
	return &CompleteAssessmentUseCase{userRepo: userRepo}
}

// Execute sets the flag.
func (uc *CompleteAssessmentUseCase) Execute(ctx context.Context, input CompleteAssessmentInput) error {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	user.HasCompletedAssessment = true
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
