package auth

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for refreshing a token pair.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of refreshing a token pair.
type RefreshTokenOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshTokenUseCase rotates a token pair: the presented refresh token is
// invalidated and a fresh pair is issued for the same subject.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokenService: tokenService}
}

// Execute rotates the pair.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid refresh token",
			domainerror.ErrInvalidToken,
		)
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token revoked",
			domainerror.ErrInvalidToken,
		)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, claims.SubjectID, claims.Email, claims.Role, claims.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshTokenOutput{Tokens: tokens}, nil
}

// LogoutInput represents the input for logout.
type LogoutInput struct {
	RefreshToken string
}

// LogoutUseCase invalidates the presented refresh token. Logging out with an
// unknown token succeeds; the end state is the same.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{tokenService: tokenService}
}

// Execute invalidates the token.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}
	return nil
}
