// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aidiy/backend/internal/application/usecase/auth"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase      *auth.RegisterUserUseCase
	sendOTPUseCase       *auth.SendOTPUseCase
	verifyOTPUseCase     *auth.VerifyOTPUseCase
	resetPasswordUseCase *auth.ResetPasswordUseCase
	loginUseCase         *auth.LoginUserUseCase
	kidLoginUseCase      *auth.KidLoginUseCase
	googleLoginUseCase   *auth.GoogleLoginUseCase
	refreshUseCase       *auth.RefreshTokenUseCase
	logoutUseCase        *auth.LogoutUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	sendOTPUseCase *auth.SendOTPUseCase,
	verifyOTPUseCase *auth.VerifyOTPUseCase,
	resetPasswordUseCase *auth.ResetPasswordUseCase,
	loginUseCase *auth.LoginUserUseCase,
	kidLoginUseCase *auth.KidLoginUseCase,
	googleLoginUseCase *auth.GoogleLoginUseCase,
	refreshUseCase *auth.RefreshTokenUseCase,
	logoutUseCase *auth.LogoutUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase:      registerUseCase,
		sendOTPUseCase:       sendOTPUseCase,
		verifyOTPUseCase:     verifyOTPUseCase,
		resetPasswordUseCase: resetPasswordUseCase,
		loginUseCase:         loginUseCase,
		kidLoginUseCase:      kidLoginUseCase,
		googleLoginUseCase:   googleLoginUseCase,
		refreshUseCase:       refreshUseCase,
		logoutUseCase:        logoutUseCase,
	}
}

// Register handles POST /auth/register requests. The account stays pending
// until the emailed code is verified.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	_, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Avatar:      req.Avatar,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	// Issue the verification code right away.
	if _, err := c.sendOTPUseCase.Execute(ctx.Request.Context(), auth.SendOTPInput{Email: req.Email}); err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{
		Success: true,
		Message: "Registration received, check your email for the verification code",
	})
}

// SendOTP handles POST /auth/send-otp and POST /auth/resend-otp requests.
func (c *AuthController) SendOTP(ctx *gin.Context) {
	var req dto.SendOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.sendOTPUseCase.Execute(ctx.Request.Context(), auth.SendOTPInput{Email: req.Email})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OTPResponse{
		Success: true,
		Message: "Verification code sent",
		Purpose: string(output.Purpose),
	})
}

// VerifyOTP handles POST /auth/verify-otp requests.
func (c *AuthController) VerifyOTP(ctx *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.verifyOTPUseCase.Execute(ctx.Request.Context(), auth.VerifyOTPInput{
		Email: req.Email,
		Code:  req.OTP,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OTPResponse{
		Success: true,
		Message: "Code verified",
		Purpose: string(output.Purpose),
	})
}

// ResetPassword handles POST /auth/reset-password requests.
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	err := c.resetPasswordUseCase.Execute(ctx.Request.Context(), auth.ResetPasswordInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Password updated",
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success:      true,
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
		User:         dto.ToUserResponse(output.User),
	})
}

// KidLogin handles POST /auth/kid-login requests.
func (c *AuthController) KidLogin(ctx *gin.Context) {
	var req dto.KidLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.kidLoginUseCase.Execute(ctx.Request.Context(), auth.KidLoginInput{
		Username: req.Username,
		Code:     req.Code,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.KidAuthResponse{
		Success:      true,
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
		Kid:          dto.ToChildResponse(output.Child),
	})
}

// GoogleLogin handles POST /auth/google requests.
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.googleLoginUseCase.Execute(ctx.Request.Context(), auth.GoogleLoginInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success:      true,
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
		User:         dto.ToUserResponse(output.User),
	})
}

// Refresh handles POST /auth/refresh requests.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.refreshUseCase.Execute(ctx.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		Success:      true,
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	if err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Logged out",
	})
}

// handleAuthError handles auth errors and returns appropriate HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForAuthError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound, domainerror.ErrCodeChildNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeInvalidGoogleToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited, domainerror.ErrCodeOTPTooManyAttempts:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeOTPNotFound,
		domainerror.ErrCodeOTPExpired,
		domainerror.ErrCodeOTPMismatch,
		domainerror.ErrCodeOTPNotValidated,
		domainerror.ErrCodePendingMissing:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
