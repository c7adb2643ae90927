// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role identifies which side of the family an authenticated subject is on.
type Role string

const (
	RoleParent Role = "parent"
	RoleKid    Role = "kid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	SubjectID uuid.UUID
	Email     string
	Role      Role
	Username  string // kid username, empty for parents
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair for the
	// given subject.
	GenerateTokenPair(ctx context.Context, subjectID uuid.UUID, email string, role Role, username string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken invalidates a refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// IsRefreshTokenValid checks if a refresh token is still valid (not invalidated).
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}

// GoogleVerifier verifies Google Sign-In ID tokens.
type GoogleVerifier interface {
	// Verify validates the ID token against the configured OAuth client id
	// and returns the token's email and display name.
	Verify(ctx context.Context, idToken string) (email, name string, err error)
}
