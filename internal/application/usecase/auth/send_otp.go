package auth

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// SendOTPInput represents the input for sending a one-time code.
type SendOTPInput struct {
	Email string
}

// SendOTPOutput reports which flow the code was issued for.
type SendOTPOutput struct {
	Purpose adapter.OTPPurpose
}

// SendOTPUseCase issues a one-time code. The purpose is inferred from account
// state: a verified user gets a reset code, a pending registration gets a
// verification code. Resending replaces the live code.
type SendOTPUseCase struct {
	userRepo     adapter.UserRepository
	pendingRepo  adapter.PendingUserRepository
	otpService   adapter.OTPService
	emailService adapter.EmailService
}

// NewSendOTPUseCase creates a new SendOTPUseCase instance.
func NewSendOTPUseCase(
	userRepo adapter.UserRepository,
	pendingRepo adapter.PendingUserRepository,
	otpService adapter.OTPService,
	emailService adapter.EmailService,
) *SendOTPUseCase {
	return &SendOTPUseCase{
		userRepo:     userRepo,
		pendingRepo:  pendingRepo,
		otpService:   otpService,
		emailService: emailService,
	}
}

// Execute issues and emails the code.
func (uc *SendOTPUseCase) Execute(ctx context.Context, input SendOTPInput) (*SendOTPOutput, error) {
	if input.Email == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email required",
			nil,
		)
	}

	purpose, name, err := uc.resolvePurpose(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	code, err := uc.otpService.Issue(ctx, input.Email, purpose)
	if err != nil {
		return nil, fmt.Errorf("failed to issue OTP: %w", err)
	}

	if err := uc.emailService.QueueOTPEmail(ctx, adapter.QueueOTPEmailInput{
		Email:     input.Email,
		Name:      name,
		Code:      code,
		Purpose:   string(purpose),
		ExpiresIn: "5 minutes",
	}); err != nil {
		return nil, fmt.Errorf("failed to queue OTP email: %w", err)
	}

	return &SendOTPOutput{Purpose: purpose}, nil
}

func (uc *SendOTPUseCase) resolvePurpose(ctx context.Context, email string) (adapter.OTPPurpose, string, error) {
	if user, err := uc.userRepo.FindByEmail(ctx, email); err == nil {
		return adapter.OTPPurposeReset, user.Name(), nil
	}
	if pending, err := uc.pendingRepo.FindByEmail(ctx, email); err == nil {
		return adapter.OTPPurposeVerify, pending.FirstName, nil
	}
	return "", "", domainerror.NewAuthError(
		domainerror.ErrCodeUserNotFound,
		"email not found",
		domainerror.ErrUserNotFound,
	)
}
