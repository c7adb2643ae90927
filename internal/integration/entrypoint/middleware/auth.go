// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// SubjectIDKey is the context key for the authenticated subject's ID.
	SubjectIDKey ContextKey = "subject_id"
	// SubjectEmailKey is the context key for the authenticated subject's email.
	// For kids this is the synthetic inbox address.
	SubjectEmailKey ContextKey = "subject_email"
	// RoleKey is the context key for the subject's role (parent or kid).
	RoleKey ContextKey = "role"
	// KidUsernameKey is the context key for the kid's username, empty for parents.
	KidUsernameKey ContextKey = "kid_username"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(SubjectIDKey), claims.SubjectID)
		c.Set(string(SubjectEmailKey), claims.Email)
		c.Set(string(RoleKey), claims.Role)
		c.Set(string(KidUsernameKey), claims.Username)

		c.Next()
	}
}

// RequireParent returns a handler that rejects non-parent tokens.
func (m *AuthMiddleware) RequireParent() gin.HandlerFunc {
	return m.requireRole(adapter.RoleParent, "This endpoint is for parents")
}

// RequireKid returns a handler that rejects non-kid tokens.
func (m *AuthMiddleware) RequireKid() gin.HandlerFunc {
	return m.requireRole(adapter.RoleKid, "This endpoint is for kids")
}

func (m *AuthMiddleware) requireRole(role adapter.Role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := GetRoleFromContext(c)
		if !ok || got != role {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: message,
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSubjectIDFromContext extracts the subject ID from the Gin context.
func GetSubjectIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	subjectID, exists := c.Get(string(SubjectIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := subjectID.(uuid.UUID)
	return id, ok
}

// GetSubjectEmailFromContext extracts the subject email from the Gin context.
func GetSubjectEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(SubjectEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetRoleFromContext extracts the subject role from the Gin context.
func GetRoleFromContext(c *gin.Context) (adapter.Role, bool) {
	role, exists := c.Get(string(RoleKey))
	if !exists {
		return "", false
	}
	r, ok := role.(adapter.Role)
	return r, ok
}

// GetKidUsernameFromContext extracts the kid username from the Gin context.
// It is empty for parent tokens.
func GetKidUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get(string(KidUsernameKey))
	if !exists {
		return "", false
	}
	usernameStr, ok := username.(string)
	return usernameStr, ok
}
