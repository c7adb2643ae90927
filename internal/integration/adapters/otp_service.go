// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

const (
	otpTTL         = 5 * time.Minute
	otpMaxAttempts = 3

	otpFieldCode      = "code"
	otpFieldPurpose   = "purpose"
	otpFieldAttempts  = "attempts"
	otpFieldValidated = "validated"
)

// otpService implements the adapter.OTPService interface on Redis. Each email
// holds at most one live code, stored as a hash under otp:<email> with the
// code's TTL.
type otpService struct {
	client *redis.Client
}

// NewOTPService creates a new OTP service instance.
func NewOTPService(client *redis.Client) adapter.OTPService {
	return &otpService{
		client: client,
	}
}

func otpKey(email string) string {
	return "otp:" + email
}

// Issue creates (or replaces) the code for the email and returns it.
func (s *otpService) Issue(ctx context.Context, email string, purpose adapter.OTPPurpose) (string, error) {
	code, err := generateOTPCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}

	key := otpKey(email)
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		otpFieldCode, code,
		otpFieldPurpose, string(purpose),
		otpFieldAttempts, 0,
		otpFieldValidated, 0,
	)
	pipe.Expire(ctx, key, otpTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store otp: %w", err)
	}

	return code, nil
}

// Verify checks the submitted code. On a mismatch it burns one attempt.
func (s *otpService) Verify(ctx context.Context, email, code string) (adapter.OTPPurpose, error) {
	key := otpKey(email)

	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to load otp: %w", err)
	}
	if len(fields) == 0 {
		return "", domainerror.ErrOTPNotFound
	}

	attempts, _ := s.client.HIncrBy(ctx, key, otpFieldAttempts, 1).Result()
	if attempts > otpMaxAttempts {
		return "", domainerror.ErrOTPTooManyAttempts
	}

	if fields[otpFieldCode] != code {
		return "", domainerror.ErrOTPMismatch
	}

	return adapter.OTPPurpose(fields[otpFieldPurpose]), nil
}

// MarkValidated flags a reset-purpose code as validated.
func (s *otpService) MarkValidated(ctx context.Context, email string) error {
	key := otpKey(email)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check otp: %w", err)
	}
	if exists == 0 {
		return domainerror.ErrOTPNotFound
	}

	return s.client.HSet(ctx, key, otpFieldValidated, 1).Err()
}

// IsValidated reports whether a validated reset code exists for the email.
func (s *otpService) IsValidated(ctx context.Context, email string) (bool, error) {
	validated, err := s.client.HGet(ctx, otpKey(email), otpFieldValidated).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to load otp: %w", err)
	}
	return validated == "1", nil
}

// Clear removes any code state for the email.
func (s *otpService) Clear(ctx context.Context, email string) error {
	return s.client.Del(ctx, otpKey(email)).Err()
}

// generateOTPCode returns a 6-digit numeric code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
