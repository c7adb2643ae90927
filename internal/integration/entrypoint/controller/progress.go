package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/usecase/progress"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/entrypoint/dto"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
)

// ProgressController handles parent review of progress submissions.
type ProgressController struct {
	approveProgressUseCase *progress.ApproveProgressUseCase
	declineProgressUseCase *progress.DeclineProgressUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(
	approveProgressUseCase *progress.ApproveProgressUseCase,
	declineProgressUseCase *progress.DeclineProgressUseCase,
) *ProgressController {
	return &ProgressController{
		approveProgressUseCase: approveProgressUseCase,
		declineProgressUseCase: declineProgressUseCase,
	}
}

// ApproveProgress handles POST /progress/:id/approve requests.
func (c *ProgressController) ApproveProgress(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	parentEmail, _ := middleware.GetSubjectEmailFromContext(ctx)

	submissionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid submission ID",
			Code:  string(domainerror.ErrCodeSubmissionNotFound),
		})
		return
	}

	output, err := c.approveProgressUseCase.Execute(ctx.Request.Context(), progress.ApproveProgressInput{
		SubmissionID: submissionID,
		ParentID:     parentID,
		ParentEmail:  parentEmail,
	})
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ApproveProgressResponse{
		Success:            true,
		NewSaved:           output.NewSaved,
		NewProgress:        output.NewProgress,
		GoalCompleted:      output.GoalCompleted,
		ArchivedChores:     output.ArchivedChores,
		CanSelectNewChores: output.CanSelectNewChores,
	})
}

// DeclineProgress handles POST /progress/:id/decline requests.
func (c *ProgressController) DeclineProgress(ctx *gin.Context) {
	parentID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	parentEmail, _ := middleware.GetSubjectEmailFromContext(ctx)

	submissionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid submission ID",
			Code:  string(domainerror.ErrCodeSubmissionNotFound),
		})
		return
	}

	output, err := c.declineProgressUseCase.Execute(ctx.Request.Context(), progress.DeclineProgressInput{
		SubmissionID: submissionID,
		ParentID:     parentID,
		ParentEmail:  parentEmail,
	})
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeclineProgressResponse{
		Success:            true,
		KidID:              output.KidID,
		GoalID:             output.GoalID.String(),
		ReassignedChoreIDs: output.ReassignedChoreIDs,
	})
}

// handleProgressError handles the error families that review routes can raise.
func (c *ProgressController) handleProgressError(ctx *gin.Context, err error) {
	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		ctx.JSON(getStatusCodeForProgressError(progressErr.Code), dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
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

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
