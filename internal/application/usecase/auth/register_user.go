// Package auth contains authentication and account lifecycle use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email       string
	FirstName   string
	LastName    string
	Password    string
	PhoneNumber string
	Avatar      string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	Email string
}

// RegisterUserUseCase records a registration as pending until the email is
// verified. Re-registering the same unverified email replaces the pending
// record; a verified email is rejected.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	pendingRepo     adapter.PendingUserRepository
	passwordService adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	pendingRepo adapter.PendingUserRepository,
	passwordService adapter.PasswordService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		pendingRepo:     pendingRepo,
		passwordService: passwordService,
	}
}

// Execute stores the pending registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if input.Email == "" || input.FirstName == "" || input.LastName == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"missing required fields",
			nil,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			err.Error(),
			err,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already verified",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	pending := entity.NewPendingUser(input.Email, input.FirstName, input.LastName, hash, input.PhoneNumber, input.Avatar)
	if err := uc.pendingRepo.Upsert(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to store pending registration: %w", err)
	}

	return &RegisterUserOutput{Email: pending.Email}, nil
}
