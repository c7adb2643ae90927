package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/usecase/chat"
	domainerror "github.com/aidiy/backend/internal/domain/error"
	"github.com/aidiy/backend/internal/integration/entrypoint/dto"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
)

// ChatController handles assistant chat endpoints.
type ChatController struct {
	chatTurnUseCase      *chat.ChatTurnUseCase
	createSessionUseCase *chat.CreateSessionUseCase
	listSessionsUseCase  *chat.ListSessionsUseCase
	getSessionUseCase    *chat.GetSessionUseCase
	renameSessionUseCase *chat.RenameSessionUseCase
	deleteSessionUseCase *chat.DeleteSessionUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(
	chatTurnUseCase *chat.ChatTurnUseCase,
	createSessionUseCase *chat.CreateSessionUseCase,
	listSessionsUseCase *chat.ListSessionsUseCase,
	getSessionUseCase *chat.GetSessionUseCase,
	renameSessionUseCase *chat.RenameSessionUseCase,
	deleteSessionUseCase *chat.DeleteSessionUseCase,
) *ChatController {
	return &ChatController{
		chatTurnUseCase:      chatTurnUseCase,
		createSessionUseCase: createSessionUseCase,
		listSessionsUseCase:  listSessionsUseCase,
		getSessionUseCase:    getSessionUseCase,
		renameSessionUseCase: renameSessionUseCase,
		deleteSessionUseCase: deleteSessionUseCase,
	}
}

// ChatTurn handles POST /ai/chat requests. Omitting session_id starts a new
// conversation.
func (c *ChatController) ChatTurn(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ChatTurnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyChatMessage),
		})
		return
	}

	input := chat.ChatTurnInput{
		OwnerEmail: email,
		Message:    req.Message,
	}
	if req.SessionID != nil {
		sessionID, err := uuid.Parse(*req.SessionID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid session ID",
				Code:  string(domainerror.ErrCodeChatSessionNotFound),
			})
			return
		}
		input.SessionID = &sessionID
	}

	output, err := c.chatTurnUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatTurnResponse{
		Success:   true,
		SessionID: output.SessionID.String(),
		Response:  output.Response,
	})
}

// CreateSession handles POST /chat/sessions requests.
func (c *ChatController) CreateSession(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.createSessionUseCase.Execute(ctx.Request.Context(), chat.CreateSessionInput{
		OwnerEmail: email,
	})
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ChatSessionMutationResponse{
		Success: true,
		Session: dto.ToChatSessionResponse(output.Session),
	})
}

// ListSessions handles GET /chat/sessions requests. Message bodies are
// omitted from the listing.
func (c *ChatController) ListSessions(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listSessionsUseCase.Execute(ctx.Request.Context(), chat.ListSessionsInput{
		OwnerEmail: email,
	})
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}

	response := dto.ChatSessionListResponse{
		Success:  true,
		Sessions: make([]dto.ChatSessionResponse, len(output.Sessions)),
	}
	for i, session := range output.Sessions {
		response.Sessions[i] = dto.ToChatSessionSummary(session)
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSession handles GET /chat/sessions/:id requests.
func (c *ChatController) GetSession(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid session ID",
			Code:  string(domainerror.ErrCodeChatSessionNotFound),
		})
		return
	}

	output, err := c.getSessionUseCase.Execute(ctx.Request.Context(), chat.GetSessionInput{
		SessionID:  sessionID,
		OwnerEmail: email,
	})
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatSessionMutationResponse{
		Success: true,
		Session: dto.ToChatSessionResponse(output.Session),
	})
}

// RenameSession handles PUT /chat/sessions/:id requests.
func (c *ChatController) RenameSession(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid session ID",
			Code:  string(domainerror.ErrCodeChatSessionNotFound),
		})
		return
	}

	var req dto.RenameSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeChatTitleRequired),
		})
		return
	}

	if err := c.renameSessionUseCase.Execute(ctx.Request.Context(), chat.RenameSessionInput{
		SessionID:  sessionID,
		OwnerEmail: email,
		Title:      req.Title,
	}); err != nil {
		c.handleChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Session renamed",
	})
}

// DeleteSession handles DELETE /chat/sessions/:id requests.
func (c *ChatController) DeleteSession(ctx *gin.Context) {
	email, ok := middleware.GetSubjectEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid session ID",
			Code:  string(domainerror.ErrCodeChatSessionNotFound),
		})
		return
	}

	if err := c.deleteSessionUseCase.Execute(ctx.Request.Context(), chat.DeleteSessionInput{
		SessionID:  sessionID,
		OwnerEmail: email,
	}); err != nil {
		c.handleChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Session deleted",
	})
}

// handleChatError handles chat errors.
func (c *ChatController) handleChatError(ctx *gin.Context, err error) {
	var chatErr *domainerror.ChatError
	if errors.As(err, &chatErr) {
		ctx.JSON(getStatusCodeForChatError(chatErr.Code), dto.ErrorResponse{
			Error: chatErr.Message,
			Code:  string(chatErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForChatError maps chat error codes to HTTP status codes.
func getStatusCodeForChatError(code domainerror.ChatErrorCode) int {
	switch code {
	case domainerror.ErrCodeChatSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeChatTitleRequired, domainerror.ErrCodeEmptyChatMessage:
		return http.StatusBadRequest
	case domainerror.ErrCodeAIUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
