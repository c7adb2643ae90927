package auth

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// KidLoginInput represents the input for kid login.
type KidLoginInput struct {
	Username string
	Code     string
}

// KidLoginOutput represents the output of kid login.
type KidLoginOutput struct {
	Child  *entity.Child
	Tokens *adapter.TokenPair
}

// KidLoginUseCase authenticates a kid with their username and 4-digit login
// code. The issued token carries the kid role and the synthetic inbox
// address, never the parent's email.
type KidLoginUseCase struct {
	childRepo       adapter.ChildRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewKidLoginUseCase creates a new KidLoginUseCase instance.
func NewKidLoginUseCase(
	childRepo adapter.ChildRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *KidLoginUseCase {
	return &KidLoginUseCase{
		childRepo:       childRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login.
func (uc *KidLoginUseCase) Execute(ctx context.Context, input KidLoginInput) (*KidLoginOutput, error) {
	if input.Username == "" || len(input.Code) != 4 || !isDigits(input.Code) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username and 4-digit code required",
			nil,
		)
	}

	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid kid credentials",
		domainerror.ErrInvalidCredentials,
	)

	child, err := uc.childRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, invalid
	}
	if err := uc.passwordService.VerifyPassword(child.LoginCodeHash, input.Code); err != nil {
		return nil, invalid
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, child.ID, child.InboxAddress(), adapter.RoleKid, child.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &KidLoginOutput{Child: child, Tokens: tokens}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
