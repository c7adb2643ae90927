// Package dto defines data transfer objects for API requests and responses.
package dto

// RegisterRequest represents the request body for parent registration.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phone_number"`
	Avatar      string `json:"avatar"`
}

// SendOTPRequest represents the request body for requesting a one-time code.
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest represents the request body for verifying a one-time code.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest represents the request body for password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// LoginRequest represents the request body for parent login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// KidLoginRequest represents the request body for kid login.
type KidLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Code     string `json:"code" binding:"required,len=4"`
}

// GoogleLoginRequest represents the request body for Google Sign-In.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents the response for parent authentication endpoints.
type AuthResponse struct {
	Success      bool         `json:"success"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// KidAuthResponse represents the response for kid authentication.
type KidAuthResponse struct {
	Success      bool          `json:"success"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Kid          ChildResponse `json:"kid"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// OTPResponse represents the response after issuing a one-time code.
type OTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Purpose string `json:"purpose"`
}
