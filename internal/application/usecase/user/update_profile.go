package user

import (
	"context"
	"fmt"
	"time"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update. Nil fields
// are left untouched.
type UpdateProfileInput struct {
	Email       string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	BirthDate   *string
	Avatar      *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase applies profile edits. Any successful update marks the
// profile complete; the onboarding flow keys off that flag.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute applies the update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if input.FirstName == nil && input.LastName == nil && input.PhoneNumber == nil &&
		input.BirthDate == nil && input.Avatar == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"no valid fields to update",
			nil,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.BirthDate != nil {
		user.BirthDate = *input.BirthDate
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	user.IsProfileComplete = true
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
