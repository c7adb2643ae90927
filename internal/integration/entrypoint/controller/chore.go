package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/application/usecase/chore"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/entrypoint/dto"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
)

// ChoreController handles chore management endpoints.
type ChoreController struct {
	listChoresUseCase      *chore.ListChoresUseCase
	createChoreUseCase     *chore.CreateChoreUseCase
	updateChoreUseCase     *chore.UpdateChoreUseCase
	deleteChoreUseCase     *chore.DeleteChoreUseCase
	assignToGoalUseCase    *chore.AssignToGoalUseCase
	recommendChoresUseCase *chore.RecommendChoresUseCase
	childrenChoresUseCase  *chore.ChildrenChoresUseCase
}

// NewChoreController creates a new chore controller instance.
func NewChoreController(
	listChoresUseCase *chore.ListChoresUseCase,
	createChoreUseCase *chore.CreateChoreUseCase,
	updateChoreUseCase *chore.UpdateChoreUseCase,
	deleteChoreUseCase *chore.DeleteChoreUseCase,
	assignToGoalUseCase *chore.AssignToGoalUseCase,
	recommendChoresUseCase *chore.RecommendChoresUseCase,
	childrenChoresUseCase *chore.ChildrenChoresUseCase,
) *ChoreController {
	return &ChoreController{
		listChoresUseCase:      listChoresUseCase,
		createChoreUseCase:     createChoreUseCase,
		updateChoreUseCase:     updateChoreUseCase,
		deleteChoreUseCase:     deleteChoreUseCase,
		assignToGoalUseCase:    assignToGoalUseCase,
		recommendChoresUseCase: recommendChoresUseCase,
		childrenChoresUseCase:  childrenChoresUseCase,
	}
}

// ListChores handles GET /chores requests. A kid token lists the kid's own
// chores, optionally scoped to one goal; a parent token lists the family's
// chores with optional kid and status filters.
func (c *ChoreController) ListChores(ctx *gin.Context) {
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := chore.ListChoresInput{}
	if role == adapter.RoleKid {
		kidUsername, _ := middleware.GetKidUsernameFromContext(ctx)
		input.KidUsername = kidUsername
		if raw := ctx.Query("goal_id"); raw != "" {
			goalID, err := uuid.Parse(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid goal ID",
					Code:  string(domainerror.ErrCodeGoalNotFound),
				})
				return
			}
			input.GoalID = &goalID
		}
	} else {
		parentID, _ := middleware.GetSubjectIDFromContext(ctx)
		input.ParentID = parentID
		input.FilterKid = ctx.Query("kid")
		input.FilterStatus = ctx.Query("status")
	}

	output, err := c.listChoresUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleChoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChoreListResponse(output.Chores))
}

// CreateChore handles POST /chores requests.
func (c *ChoreController) CreateChore(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateChoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChoreFields),
		})
		return
	}

	output, err := c.createChoreUseCase.Execute(ctx.Request.Context(), chore.CreateChoreInput{
		ParentID:    parentID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Reward:      decimal.NewFromFloat(req.Reward),
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		c.handleChoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ChoreMutationResponse{
		Success: true,
		Chore:   dto.ToChoreResponse(output.Chore),
	})
}

// UpdateChore handles PUT /chores/:id requests.
func (c *ChoreController) UpdateChore(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	choreID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid chore ID",
			Code:  string(domainerror.ErrCodeChoreNotFound),
		})
		return
	}

	var req dto.UpdateChoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingChoreFields),
		})
		return
	}

	input := chore.UpdateChoreInput{
		ChoreID:     choreID,
		ParentID:    parentID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
	}
	if req.Reward != nil {
		reward := decimal.NewFromFloat(*req.Reward)
		input.Reward = &reward
	}

	output, err := c.updateChoreUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleChoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChoreMutationResponse{
		Success: true,
		Chore:   dto.ToChoreResponse(output.Chore),
	})
}

// DeleteChore handles DELETE /chores/:id requests.
func (c *ChoreController) DeleteChore(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	choreID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid chore ID",
			Code:  string(domainerror.ErrCodeChoreNotFound),
		})
		return
	}

	if err := c.deleteChoreUseCase.Execute(ctx.Request.Context(), chore.DeleteChoreInput{
		ChoreID:  choreID,
		ParentID: parentID,
	}); err != nil {
		c.handleChoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Chore deleted",
	})
}

// AssignToGoal handles POST /chores/assign-to-goal requests.
func (c *ChoreController) AssignToGoal(ctx *gin.Context) {
	kidUsername, ok := middleware.GetKidUsernameFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AssignToGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeNoChoresSelected),
		})
		return
	}

	goalID, err := uuid.Parse(req.GoalID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	choreIDs := make([]uuid.UUID, 0, len(req.ChoreIDs))
	for _, raw := range req.ChoreIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid chore ID: " + raw,
				Code:  string(domainerror.ErrCodeChoreNotFound),
			})
			return
		}
		choreIDs = append(choreIDs, id)
	}

	output, err := c.assignToGoalUseCase.Execute(ctx.Request.Context(), chore.AssignToGoalInput{
		KidUsername: kidUsername,
		GoalID:      goalID,
		ChoreIDs:    choreIDs,
	})
	if err != nil {
		c.handleChoreError(ctx, err)
		return
	}

	assigned := make([]dto.ChoreResponse, len(output.Assigned))
	for i, assignedChore := range output.Assigned {
		assigned[i] = dto.ToChoreResponse(assignedChore)
	}

	ctx.JSON(http.StatusOK, dto.AssignToGoalResponse{
		Success:  true,
		Goal:     dto.ToGoalResponse(output.Goal),
		Assigned: assigned,
	})
}

// Recommendations handles GET /chores/recommendations requests.
func (c *ChoreController) Recommendations(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.recommendChoresUseCase.Execute(ctx.Request.Context(), chore.RecommendChoresInput{
		ParentID: parentID,
	})
	if err != nil {
		c.handleChoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecommendationsResponse(output.Recommendations))
}

// ChildrenChores handles GET /parent/children-chores requests.
func (c *ChoreController) ChildrenChores(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.childrenChoresUseCase.Execute(ctx.Request.Context(), chore.ChildrenChoresInput{
		ParentID: parentID,
	})
	if err != nil {
		c.handleChoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChildrenChoresResponse(output.Children))
}

// handleChoreError handles the error families that chore routes can raise.
func (c *ChoreController) handleChoreError(ctx *gin.Context, err error) {
	var choreErr *domainerror.ChoreError
	if errors.As(err, &choreErr) {
		ctx.JSON(getStatusCodeForChoreError(choreErr.Code), dto.ErrorResponse{
			Error: choreErr.Message,
			Code:  string(choreErr.Code),
		})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var chatErr *domainerror.ChatError
	if errors.As(err, &chatErr) {
		ctx.JSON(getStatusCodeForChatError(chatErr.Code), dto.ErrorResponse{
			Error: chatErr.Message,
			Code:  string(chatErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := http.StatusInternalServerError
		if authErr.Code == domainerror.ErrCodeChildNotFound || authErr.Code == domainerror.ErrCodeUserNotFound {
			statusCode = http.StatusNotFound
		}
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
