package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aidiy/backend/internal/application/usecase/user"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/entrypoint/dto"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
)

// UserController handles profile and child-management endpoints.
type UserController struct {
	getProfileUseCase         *user.GetProfileUseCase
	updateProfileUseCase      *user.UpdateProfileUseCase
	listChildrenUseCase       *user.ListChildrenUseCase
	addChildUseCase           *user.AddChildUseCase
	updateChildUseCase        *user.UpdateChildUseCase
	completeAssessmentUseCase *user.CompleteAssessmentUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
	listChildrenUseCase *user.ListChildrenUseCase,
	addChildUseCase *user.AddChildUseCase,
	updateChildUseCase *user.UpdateChildUseCase,
	completeAssessmentUseCase *user.CompleteAssessmentUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:         getProfileUseCase,
		updateProfileUseCase:      updateProfileUseCase,
		listChildrenUseCase:       listChildrenUseCase,
		addChildUseCase:           addChildUseCase,
		updateChildUseCase:        updateChildUseCase,
		completeAssessmentUseCase: completeAssessmentUseCase,
	}
}

// GetProfile handles GET /users/profile requests. Kid tokens resolve to the
// kid's own profile plus financial summary, parent tokens to the account.
func (c *UserController) GetProfile(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	kidUsername, _ := middleware.GetKidUsernameFromContext(ctx)

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{
		Email:       email,
		KidUsername: kidUsername,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// UpdateProfile handles PUT /users/profile requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), user.UpdateProfileInput{
		Email:       email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		BirthDate:   req.BirthDate,
		Avatar:      req.Avatar,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateProfileResponse{
		Success: true,
		User:    dto.ToUserResponse(output.User),
	})
}

// ListChildren handles GET /users/children requests.
func (c *UserController) ListChildren(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listChildrenUseCase.Execute(ctx.Request.Context(), user.ListChildrenInput{
		ParentID: parentID,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChildListResponse(output.Children))
}

// AddChild handles POST /users/children requests.
func (c *UserController) AddChild(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	parentEmail, _ := middleware.GetSubjectEmailFromContext(ctx)

	var req dto.AddChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.addChildUseCase.Execute(ctx.Request.Context(), user.AddChildInput{
		ParentID:    parentID,
		ParentEmail: parentEmail,
		Username:    req.Username,
		FirstName:   req.FirstName,
		NickName:    req.NickName,
		Avatar:      req.Avatar,
		BirthDate:   req.BirthDate,
		LoginCode:   req.LoginCode,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ChildMutationResponse{
		Success: true,
		Kid:     dto.ToChildResponse(output.Child),
	})
}

// UpdateChild handles PUT /users/children/:username requests.
func (c *UserController) UpdateChild(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	username := ctx.Param("username")

	var req dto.UpdateChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.updateChildUseCase.Execute(ctx.Request.Context(), user.UpdateChildInput{
		ParentID:    parentID,
		Username:    username,
		FirstName:   req.FirstName,
		NickName:    req.NickName,
		Avatar:      req.Avatar,
		BirthDate:   req.BirthDate,
		LoginCode:   req.LoginCode,
		NewUsername: req.NewUsername,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChildMutationResponse{
		Success: true,
		Kid:     dto.ToChildResponse(output.Child),
	})
}

// CompleteAssessment handles POST /users/complete-assessment requests.
func (c *UserController) CompleteAssessment(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	if err := c.completeAssessmentUseCase.Execute(ctx.Request.Context(), user.CompleteAssessmentInput{Email: email}); err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Assessment recorded",
	})
}

// handleUserError handles auth-domain errors raised by profile operations.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForUserError(authErr.Code)
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

// getStatusCodeForUserError maps auth error codes to HTTP status codes.
func (c *UserController) getStatusCodeForUserError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound, domainerror.ErrCodeChildNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidToken, domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
