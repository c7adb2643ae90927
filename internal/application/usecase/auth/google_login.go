package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// GoogleLoginInput represents the input for Google sign-in.
type GoogleLoginInput struct {
	IDToken string
}

// GoogleLoginOutput represents the output of Google sign-in.
type GoogleLoginOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// GoogleLoginUseCase authenticates a parent via a Google ID token. A first
// sign-in provisions the account directly as verified; there is no password
// and no OTP round-trip.
type GoogleLoginUseCase struct {
	verifier     adapter.GoogleVerifier
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewGoogleLoginUseCase creates a new GoogleLoginUseCase instance.
func NewGoogleLoginUseCase(
	verifier adapter.GoogleVerifier,
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *GoogleLoginUseCase {
	return &GoogleLoginUseCase{
		verifier:     verifier,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the sign-in.
func (uc *GoogleLoginUseCase) Execute(ctx context.Context, input GoogleLoginInput) (*GoogleLoginOutput, error) {
	if input.IDToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"no token provided",
			nil,
		)
	}

	email, name, err := uc.verifier.Verify(ctx, input.IDToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidGoogleToken,
			"token verification failed",
			domainerror.ErrInvalidGoogleToken,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		user = uc.provision(email, name)
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to provision user: %w", err)
		}
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, adapter.RoleParent, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &GoogleLoginOutput{User: user, Tokens: tokens}, nil
}

func (uc *GoogleLoginUseCase) provision(email, name string) *entity.User {
	firstName, lastName := name, ""
	if i := strings.IndexByte(name, ' '); i > 0 {
		firstName, lastName = name[:i], name[i+1:]
	}
	pending := entity.NewPendingUser(email, firstName, lastName, "", "", "")
	return pending.Promote()
}
