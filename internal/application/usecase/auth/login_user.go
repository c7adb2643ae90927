package auth

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// LoginUserInput represents the input for parent login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of parent login.
type LoginUserOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// LoginUserUseCase authenticates a parent with email and password. Missing
// users and wrong passwords produce the same error so the endpoint does not
// leak which emails are registered.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid credentials",
		domainerror.ErrInvalidCredentials,
	)

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, invalid
	}
	if user.PasswordHash == "" {
		// Google-only account, no password to check.
		return nil, invalid
	}
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalid
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, adapter.RoleParent, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{User: user, Tokens: tokens}, nil
}
