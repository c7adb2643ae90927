// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// googleVerifier implements the adapter.GoogleVerifier interface using
// Google's ID token validation endpoint.
type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a new Google ID token verifier.
func NewGoogleVerifier(clientID string) adapter.GoogleVerifier {
	return &googleVerifier{
		clientID: clientID,
	}
}

// Verify validates the ID token against the configured OAuth client id and
// returns the token's email and display name.
func (v *googleVerifier) Verify(ctx context.Context, token string) (string, string, error) {
	if v.clientID == "" {
		return "", "", fmt.Errorf("google sign-in is not configured")
	}

	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return "", "", domainerror.ErrInvalidGoogleToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", "", domainerror.ErrInvalidGoogleToken
	}
	name, _ := payload.Claims["name"].(string)

	return email, name, nil
}
