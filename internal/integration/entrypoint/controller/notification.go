package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/usecase/notification"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/entrypoint/dto"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles in-app notification endpoints.
type NotificationController struct {
	listNotificationsUseCase *notification.ListNotificationsUseCase
	unreadCountUseCase       *notification.UnreadCountUseCase
	markReadUseCase          *notification.MarkReadUseCase
	markAllReadUseCase       *notification.MarkAllReadUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listNotificationsUseCase *notification.ListNotificationsUseCase,
	unreadCountUseCase *notification.UnreadCountUseCase,
	markReadUseCase *notification.MarkReadUseCase,
	markAllReadUseCase *notification.MarkAllReadUseCase,
) *NotificationController {
	return &NotificationController{
		listNotificationsUseCase: listNotificationsUseCase,
		unreadCountUseCase:       unreadCountUseCase,
		markReadUseCase:          markReadUseCase,
		markAllReadUseCase:       markAllReadUseCase,
	}
}

// ListNotifications handles GET /notifications requests. Kid tokens resolve
// to the kid's synthetic inbox address, parent tokens to the account email.
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listNotificationsUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{
		RecipientEmail: email,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications, output.UnreadCount))
}

// UnreadCount handles GET /notifications/unread-count requests.
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.unreadCountUseCase.Execute(ctx.Request.Context(), notification.UnreadCountInput{
		RecipientEmail: email,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnreadCountResponse{
		Success: true,
		Count:   output.Count,
	})
}

// MarkRead handles POST /notifications/:id/mark-read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID",
			Code:  string(domainerror.ErrCodeNotificationNotFound),
		})
		return
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), notification.MarkReadInput{
		NotificationID: notificationID,
		RecipientEmail: email,
	}); err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Notification marked as read",
	})
}

// MarkAllRead handles POST /notifications/mark-read requests.
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.markAllReadUseCase.Execute(ctx.Request.Context(), notification.MarkAllReadInput{
		RecipientEmail: email,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MarkAllReadResponse{
		Success: true,
		Updated: output.Updated,
	})
}

// handleNotificationError handles notification errors.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var notificationErr *domainerror.NotificationError
	if errors.As(err, &notificationErr) {
		statusCode := http.StatusInternalServerError
		if notificationErr.Code == domainerror.ErrCodeNotificationNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: notificationErr.Message,
			Code:  string(notificationErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
