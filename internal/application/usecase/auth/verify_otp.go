package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// VerifyOTPInput represents the input for confirming a one-time code.
type VerifyOTPInput struct {
	Email string
	Code  string
}

// VerifyOTPOutput reports which flow the confirmation completed.
type VerifyOTPOutput struct {
	Purpose adapter.OTPPurpose
}

// VerifyOTPUseCase confirms a one-time code. A verification code promotes the
// pending registration to a full account; a reset code is flagged validated
// so the follow-up password reset can proceed.
type VerifyOTPUseCase struct {
	otpService  adapter.OTPService
	userRepo    adapter.UserRepository
	pendingRepo adapter.PendingUserRepository
}

// NewVerifyOTPUseCase creates a new VerifyOTPUseCase instance.
func NewVerifyOTPUseCase(
	otpService adapter.OTPService,
	userRepo adapter.UserRepository,
	pendingRepo adapter.PendingUserRepository,
) *VerifyOTPUseCase {
	return &VerifyOTPUseCase{
		otpService:  otpService,
		userRepo:    userRepo,
		pendingRepo: pendingRepo,
	}
}

// Execute confirms the code.
func (uc *VerifyOTPUseCase) Execute(ctx context.Context, input VerifyOTPInput) (*VerifyOTPOutput, error) {
	purpose, err := uc.otpService.Verify(ctx, input.Email, input.Code)
	if err != nil {
		return nil, otpVerifyError(err)
	}

	switch purpose {
	case adapter.OTPPurposeVerify:
		if err := uc.promote(ctx, input.Email); err != nil {
			return nil, err
		}
	case adapter.OTPPurposeReset:
		if err := uc.otpService.MarkValidated(ctx, input.Email); err != nil {
			return nil, fmt.Errorf("failed to mark OTP validated: %w", err)
		}
	}

	return &VerifyOTPOutput{Purpose: purpose}, nil
}

func (uc *VerifyOTPUseCase) promote(ctx context.Context, email string) error {
	pending, err := uc.pendingRepo.FindByEmail(ctx, email)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodePendingMissing,
			"pending registration missing",
			domainerror.ErrPendingRegistrationMissing,
		)
	}

	if err := uc.userRepo.Create(ctx, pending.Promote()); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if err := uc.pendingRepo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("failed to remove pending registration: %w", err)
	}
	// The code has served its purpose.
	if err := uc.otpService.Clear(ctx, email); err != nil {
		return fmt.Errorf("failed to clear OTP: %w", err)
	}
	return nil
}

// otpVerifyError maps OTP store failures onto coded auth errors.
func otpVerifyError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrOTPNotFound):
		return domainerror.NewAuthError(domainerror.ErrCodeOTPNotFound, "no OTP found", err)
	case errors.Is(err, domainerror.ErrOTPExpired):
		return domainerror.NewAuthError(domainerror.ErrCodeOTPExpired, "OTP expired", err)
	case errors.Is(err, domainerror.ErrOTPTooManyAttempts):
		return domainerror.NewAuthError(domainerror.ErrCodeOTPTooManyAttempts, "too many attempts", err)
	case errors.Is(err, domainerror.ErrOTPMismatch):
		return domainerror.NewAuthError(domainerror.ErrCodeOTPMismatch, "incorrect OTP", err)
	default:
		return fmt.Errorf("failed to verify OTP: %w", err)
	}
}
