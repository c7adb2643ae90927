// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
)

// fakeTokenRepository keeps refresh tokens in memory for token service tests.
type fakeTokenRepository struct {
	saved       map[string]uuid.UUID
	invalidated map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{
		saved:       make(map[string]uuid.UUID),
		invalidated: make(map[string]bool),
	}
}

func (r *fakeTokenRepository) SaveRefreshToken(_ context.Context, token string, subjectID uuid.UUID, _ time.Time) error {
	r.saved[token] = subjectID
	return nil
}

func (r *fakeTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := r.saved[token]
	return ok && !r.invalidated[token], nil
}

func (r *fakeTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *fakeTokenRepository) InvalidateAllSubjectRefreshTokens(_ context.Context, subjectID uuid.UUID) error {
	for token, owner := range r.saved {
		if owner == subjectID {
			r.invalidated[token] = true
		}
	}
	return nil
}

func (r *fakeTokenRepository) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTokenRepository()
	svc := NewTokenService("unit-test-secret", repo)

	subjectID := uuid.New()

	t.Run("parent token pair round-trips its claims", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(ctx, subjectID, "parent@example.com", adapter.RoleParent, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.SubjectID != subjectID {
			t.Errorf("expected subject %s, got %s", subjectID, claims.SubjectID)
		}
		if claims.Email != "parent@example.com" {
			t.Errorf("expected email parent@example.com, got %s", claims.Email)
		}
		if claims.Role != adapter.RoleParent {
			t.Errorf("expected role parent, got %s", claims.Role)
		}
		if claims.Username != "" {
			t.Errorf("expected empty username for parent, got %s", claims.Username)
		}
	})

	t.Run("kid token pair carries the username", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(ctx, subjectID, "emma@kids.aidiy", adapter.RoleKid, "emma")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Role != adapter.RoleKid {
			t.Errorf("expected role kid, got %s", claims.Role)
		}
		if claims.Username != "emma" {
			t.Errorf("expected username emma, got %s", claims.Username)
		}
	})

	t.Run("refresh token is persisted on generation", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(ctx, subjectID, "parent@example.com", adapter.RoleParent, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := svc.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected refresh token to be valid after generation")
		}
	})

	t.Run("token type is enforced per endpoint", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(ctx, subjectID, "parent@example.com", adapter.RoleParent, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected refresh token to be rejected as access token")
		}
		if _, err := svc.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected access token to be rejected as refresh token")
		}
	})

	t.Run("tokens signed with another secret are rejected", func(t *testing.T) {
		other := NewTokenService("another-secret", newFakeTokenRepository())
		pair, err := other.GenerateTokenPair(ctx, subjectID, "parent@example.com", adapter.RoleParent, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected token from another secret to be rejected")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := svc.ValidateAccessToken(ctx, "not-a-jwt"); err == nil {
			t.Error("expected malformed token to be rejected")
		}
	})

	t.Run("invalidated refresh token is no longer valid", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(ctx, subjectID, "parent@example.com", adapter.RoleParent, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, err := svc.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected invalidated refresh token to be invalid")
		}
	})
}
