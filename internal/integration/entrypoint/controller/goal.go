package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/application/usecase/chore"
	"github.com/aidiy/backend/internal/application/usecase/goal"
	"github.com/aidiy/backend/internal/application/usecase/progress"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/entrypoint/dto"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal lifecycle and the kid-facing quest and
// progress views.
type GoalController struct {
	listGoalsUseCase        *goal.ListGoalsUseCase
	createGoalUseCase       *goal.CreateGoalUseCase
	approveGoalUseCase      *goal.ApproveGoalUseCase
	declineGoalUseCase      *goal.DeclineGoalUseCase
	listParentGoalsUseCase  *goal.ListParentGoalsUseCase
	childrenProgressUseCase *goal.ChildrenProgressUseCase
	listGoalChoresUseCase   *chore.ListGoalChoresUseCase
	questViewUseCase        *chore.QuestViewUseCase
	progressViewUseCase     *progress.GetProgressViewUseCase
	submitProgressUseCase   *progress.SubmitProgressUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listGoalsUseCase *goal.ListGoalsUseCase,
	createGoalUseCase *goal.CreateGoalUseCase,
	approveGoalUseCase *goal.ApproveGoalUseCase,
	declineGoalUseCase *goal.DeclineGoalUseCase,
	listParentGoalsUseCase *goal.ListParentGoalsUseCase,
	childrenProgressUseCase *goal.ChildrenProgressUseCase,
	listGoalChoresUseCase *chore.ListGoalChoresUseCase,
	questViewUseCase *chore.QuestViewUseCase,
	progressViewUseCase *progress.GetProgressViewUseCase,
	submitProgressUseCase *progress.SubmitProgressUseCase,
) *GoalController {
	return &GoalController{
		listGoalsUseCase:        listGoalsUseCase,
		createGoalUseCase:       createGoalUseCase,
		approveGoalUseCase:      approveGoalUseCase,
		declineGoalUseCase:      declineGoalUseCase,
		listParentGoalsUseCase:  listParentGoalsUseCase,
		childrenProgressUseCase: childrenProgressUseCase,
		listGoalChoresUseCase:   listGoalChoresUseCase,
		questViewUseCase:        questViewUseCase,
		progressViewUseCase:     progressViewUseCase,
		submitProgressUseCase:   submitProgressUseCase,
	}
}

// ListGoals handles GET /goals requests for the authenticated kid.
func (c *GoalController) ListGoals(ctx *gin.Context) {
	kidUsername, ok := middleware.GetKidUsernameFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listGoalsUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		KidUsername: kidUsername,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// CreateGoal handles POST /goals requests for the authenticated kid.
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	kidUsername, ok := middleware.GetKidUsernameFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.createGoalUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		KidUsername:   kidUsername,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Amount:        decimal.NewFromFloat(req.Amount),
		DurationWeeks: req.DurationWeeks,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GoalMutationResponse{
		Success: true,
		Goal:    dto.ToGoalResponse(output.Goal),
	})
}

// ApproveGoal handles POST /goals/:id/approve requests.
func (c *GoalController) ApproveGoal(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	parentEmail, _ := middleware.GetSubjectEmailFromContext(ctx)

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	output, err := c.approveGoalUseCase.Execute(ctx.Request.Context(), goal.ApproveGoalInput{
		GoalID:      goalID,
		ParentID:    parentID,
		ParentEmail: parentEmail,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalMutationResponse{
		Success: true,
		Goal:    dto.ToGoalResponse(output.Goal),
	})
}

// DeclineGoal handles POST /goals/:id/decline requests.
func (c *GoalController) DeclineGoal(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	output, err := c.declineGoalUseCase.Execute(ctx.Request.Context(), goal.DeclineGoalInput{
		GoalID:   goalID,
		ParentID: parentID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalMutationResponse{
		Success: true,
		Goal:    dto.ToGoalResponse(output.Goal),
	})
}

// ListGoalChores handles GET /goals/:id/chores requests.
func (c *GoalController) ListGoalChores(ctx *gin.Context) {
	if _, ok := middleware.GetSubjectIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	output, err := c.listGoalChoresUseCase.Execute(ctx.Request.Context(), chore.ListGoalChoresInput{
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChoreListResponse(output.Chores))
}

// QuestView handles GET /goals/:id/quest requests. The selection view is
// computed server-side so stale client snapshots never drive what is
// selectable.
func (c *GoalController) QuestView(ctx *gin.Context) {
	kidUsername, ok := middleware.GetKidUsernameFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	output, err := c.questViewUseCase.Execute(ctx.Request.Context(), chore.QuestViewInput{
		KidUsername: kidUsername,
		GoalID:      goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.QuestViewResponse{
		Success:          true,
		Goal:             dto.ToGoalResponse(output.Goal),
		AvailableChores:  dto.ToQuestChoreResponses(output.AvailableChores),
		SelectedChores:   dto.ToQuestChoreResponses(output.SelectedChores),
		SavedPct:         output.SavedPct,
		PotentialPct:     output.PotentialPct,
		PotentialEarning: output.PotentialEarning,
	})
}

// ProgressView handles GET /goals/:id/progress requests. Optional repeated
// "chore_id" query params override the selection recorded on the goal.
func (c *GoalController) ProgressView(ctx *gin.Context) {
	kidUsername, ok := middleware.GetKidUsernameFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	output, err := c.progressViewUseCase.Execute(ctx.Request.Context(), progress.GetProgressViewInput{
		KidUsername:      kidUsername,
		GoalID:           goalID,
		SelectedChoreIDs: ctx.QueryArray("chore_id"),
		Now:              time.Now(),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProgressViewResponse{
		Success:       true,
		Goal:          dto.ToGoalResponse(output.Goal),
		State:         string(output.View.State),
		ChoreStatuses: output.View.ChoreStatuses,
		Chores:        dto.ToQuestChoreResponses(output.Chores),
		Deadline:      dto.ToDeadlineResponse(output.View.Deadline),
	})
}

// SubmitProgress handles POST /goals/submit-progress requests.
func (c *GoalController) SubmitProgress(ctx *gin.Context) {
	kidUsername, ok := middleware.GetKidUsernameFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SubmitProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProgressFields),
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

	submissionDate := time.Now()
	if req.SubmissionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.SubmissionDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid submission date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingProgressFields),
			})
			return
		}
		submissionDate = parsed
	}

	output, err := c.submitProgressUseCase.Execute(ctx.Request.Context(), progress.SubmitProgressInput{
		KidUsername:    kidUsername,
		GoalID:         goalID,
		ChoreIDs:       choreIDs,
		SubmissionDate: submissionDate,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubmitProgressResponse{
		Success:    true,
		Submission: dto.ToSubmissionResponse(output.Submission),
	})
}

// ListParentGoals handles GET /parent/goals requests.
func (c *GoalController) ListParentGoals(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listParentGoalsUseCase.Execute(ctx.Request.Context(), goal.ListParentGoalsInput{
		ParentID: parentID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// ChildrenProgress handles GET /parent/children-progress requests.
func (c *GoalController) ChildrenProgress(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.childrenProgressUseCase.Execute(ctx.Request.Context(), goal.ChildrenProgressInput{
		ParentID: parentID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChildrenProgressResponse(output.Children))
}

// handleGoalError handles the error families that goal routes can raise.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var choreErr *domainerror.ChoreError
	if errors.As(err, &choreErr) {
		ctx.JSON(getStatusCodeForChoreError(choreErr.Code), dto.ErrorResponse{
			Error: choreErr.Message,
			Code:  string(choreErr.Code),
		})
		return
	}

	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		ctx.JSON(getStatusCodeForProgressError(progressErr.Code), dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
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

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeGoalNotPending, domainerror.ErrCodeGoalNotApproved:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidGoalAmount,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeOnlyKidsCreate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForChoreError maps chore error codes to HTTP status codes.
func getStatusCodeForChoreError(code domainerror.ChoreErrorCode) int {
	switch code {
	case domainerror.ErrCodeChoreNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedChoreAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeChoreAlreadyClaimed, domainerror.ErrCodeChoreNotSubmittable:
		return http.StatusConflict
	case domainerror.ErrCodeMissingChoreFields, domainerror.ErrCodeNoChoresSelected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForProgressError maps progress error codes to HTTP status codes.
func getStatusCodeForProgressError(code domainerror.ProgressErrorCode) int {
	switch code {
	case domainerror.ErrCodeSubmissionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedSubmissionAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeSubmissionNotPending, domainerror.ErrCodeDeadlinePassed:
		return http.StatusConflict
	case domainerror.ErrCodeEmptySubmission, domainerror.ErrCodeMissingProgressFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
