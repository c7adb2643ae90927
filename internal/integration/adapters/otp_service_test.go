// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

func newOTPTestService(t *testing.T) adapter.OTPService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewOTPService(client)
}

func TestOTPService_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := newOTPTestService(t)

	t.Run("issued code verifies with its purpose", func(t *testing.T) {
		code, err := svc.Issue(ctx, "parent@example.com", adapter.OTPPurposeVerify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != 6 {
			t.Errorf("expected 6-digit code, got %q", code)
		}

		purpose, err := svc.Verify(ctx, "parent@example.com", code)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if purpose != adapter.OTPPurposeVerify {
			t.Errorf("expected purpose verify, got %s", purpose)
		}
	})

	t.Run("verify without an issued code fails", func(t *testing.T) {
		_, err := svc.Verify(ctx, "nobody@example.com", "123456")
		if !errors.Is(err, domainerror.ErrOTPNotFound) {
			t.Errorf("expected ErrOTPNotFound, got %v", err)
		}
	})

	t.Run("wrong code burns attempts until locked", func(t *testing.T) {
		code, err := svc.Issue(ctx, "retry@example.com", adapter.OTPPurposeVerify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i := 0; i < 3; i++ {
			_, err := svc.Verify(ctx, "retry@example.com", "000000")
			if !errors.Is(err, domainerror.ErrOTPMismatch) {
				t.Fatalf("attempt %d: expected ErrOTPMismatch, got %v", i+1, err)
			}
		}

		// Attempts exhausted: even the right code is rejected now.
		_, err = svc.Verify(ctx, "retry@example.com", code)
		if !errors.Is(err, domainerror.ErrOTPTooManyAttempts) {
			t.Errorf("expected ErrOTPTooManyAttempts, got %v", err)
		}
	})

	t.Run("reissuing replaces the previous code", func(t *testing.T) {
		first, err := svc.Issue(ctx, "replace@example.com", adapter.OTPPurposeVerify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.Issue(ctx, "replace@example.com", adapter.OTPPurposeReset)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first != second {
			if _, err := svc.Verify(ctx, "replace@example.com", first); !errors.Is(err, domainerror.ErrOTPMismatch) {
				t.Errorf("expected stale code to mismatch, got %v", err)
			}
		}
		purpose, err := svc.Verify(ctx, "replace@example.com", second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if purpose != adapter.OTPPurposeReset {
			t.Errorf("expected purpose reset, got %s", purpose)
		}
	})
}

func TestOTPService_ValidatedFlag(t *testing.T) {
	ctx := context.Background()
	svc := newOTPTestService(t)

	t.Run("fresh code is not validated", func(t *testing.T) {
		if _, err := svc.Issue(ctx, "reset@example.com", adapter.OTPPurposeReset); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		validated, err := svc.IsValidated(ctx, "reset@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if validated {
			t.Error("expected fresh code not to be validated")
		}
	})

	t.Run("mark validated flips the flag", func(t *testing.T) {
		if err := svc.MarkValidated(ctx, "reset@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		validated, err := svc.IsValidated(ctx, "reset@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !validated {
			t.Error("expected code to be validated")
		}
	})

	t.Run("mark validated without a code fails", func(t *testing.T) {
		err := svc.MarkValidated(ctx, "nothing@example.com")
		if !errors.Is(err, domainerror.ErrOTPNotFound) {
			t.Errorf("expected ErrOTPNotFound, got %v", err)
		}
	})

	t.Run("clear removes all code state", func(t *testing.T) {
		if err := svc.Clear(ctx, "reset@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		validated, err := svc.IsValidated(ctx, "reset@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if validated {
			t.Error("expected cleared code not to be validated")
		}
		if _, err := svc.Verify(ctx, "reset@example.com", "123456"); !errors.Is(err, domainerror.ErrOTPNotFound) {
			t.Errorf("expected ErrOTPNotFound after clear, got %v", err)
		}
	})
}
