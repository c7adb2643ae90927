package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for a password reset.
type ResetPasswordInput struct {
	Email       string
	NewPassword string
}

// ResetPasswordUseCase replaces a verified user's password. It requires a
// reset code confirmed through verify-otp first; the code state is cleared
// afterwards so it cannot be replayed.
type ResetPasswordUseCase struct {
	userRepo        adapter.UserRepository
	otpService      adapter.OTPService
	passwordService adapter.PasswordService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	otpService adapter.OTPService,
	passwordService adapter.PasswordService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:        userRepo,
		otpService:      otpService,
		passwordService: passwordService,
	}
}

// Execute performs the reset.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	if input.Email == "" || input.NewPassword == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email and new password required",
			nil,
		)
	}

	validated, err := uc.otpService.IsValidated(ctx, input.Email)
	if err != nil {
		return fmt.Errorf("failed to check OTP state: %w", err)
	}
	if !validated {
		return domainerror.NewAuthError(
			domainerror.ErrCodeOTPNotValidated,
			"OTP not validated",
			domainerror.ErrOTPNotValidated,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			err.Error(),
			err,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := uc.otpService.Clear(ctx, input.Email); err != nil {
		return fmt.Errorf("failed to clear OTP: %w", err)
	}
	return nil
}
