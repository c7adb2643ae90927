// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/aidiy/backend/internal/integration/entrypoint/controller"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	userController         *controller.UserController
	goalController         *controller.GoalController
	choreController        *controller.ChoreController
	progressController     *controller.ProgressController
	notificationController *controller.NotificationController
	chatController         *controller.ChatController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	goalController *controller.GoalController,
	choreController *controller.ChoreController,
	progressController *controller.ProgressController,
	notificationController *controller.NotificationController,
	chatController *controller.ChatController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		userController:         userController,
		goalController:         goalController,
		choreController:        choreController,
		progressController:     progressController,
		notificationController: notificationController,
		chatController:         chatController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/send-otp", r.loginRateLimiter.Middleware(), r.authController.SendOTP)
				auth.POST("/resend-otp", r.loginRateLimiter.Middleware(), r.authController.SendOTP)
				auth.POST("/verify-otp", r.loginRateLimiter.Middleware(), r.authController.VerifyOTP)
				auth.POST("/reset-password", r.authController.ResetPassword)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/kid-login", r.loginRateLimiter.Middleware(), r.authController.KidLogin)
				auth.POST("/google", r.authController.GoogleLogin)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/profile", r.userController.GetProfile)
				users.PUT("/profile", r.userController.UpdateProfile)
				users.POST("/complete-assessment", r.userController.CompleteAssessment)

				children := users.Group("/children")
				children.Use(r.authMiddleware.RequireParent())
				{
					children.GET("", r.userController.ListChildren)
					children.POST("", r.userController.AddChild)
					children.PUT("/:username", r.userController.UpdateChild)
				}
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.authMiddleware.RequireKid(), r.goalController.ListGoals)
				goals.POST("", r.authMiddleware.RequireKid(), r.goalController.CreateGoal)
				goals.POST("/submit-progress", r.authMiddleware.RequireKid(), r.goalController.SubmitProgress)
				goals.POST("/:id/approve", r.authMiddleware.RequireParent(), r.goalController.ApproveGoal)
				goals.POST("/:id/decline", r.authMiddleware.RequireParent(), r.goalController.DeclineGoal)
				goals.GET("/:id/chores", r.goalController.ListGoalChores)
				goals.GET("/:id/quest", r.authMiddleware.RequireKid(), r.goalController.QuestView)
				goals.GET("/:id/progress", r.authMiddleware.RequireKid(), r.goalController.ProgressView)
			}
		}

		// Chore routes (require authentication)
		if r.choreController != nil && r.authMiddleware != nil {
			chores := v1.Group("/chores")
			chores.Use(r.authMiddleware.Authenticate())
			{
				chores.GET("", r.choreController.ListChores)
				chores.POST("", r.authMiddleware.RequireParent(), r.choreController.CreateChore)
				chores.PUT("/:id", r.authMiddleware.RequireParent(), r.choreController.UpdateChore)
				chores.DELETE("/:id", r.authMiddleware.RequireParent(), r.choreController.DeleteChore)
				chores.POST("/assign-to-goal", r.authMiddleware.RequireKid(), r.choreController.AssignToGoal)
				chores.GET("/recommendations", r.authMiddleware.RequireParent(), r.choreController.Recommendations)
			}
		}

		// Parent dashboard routes (require a parent token)
		if r.goalController != nil && r.choreController != nil && r.authMiddleware != nil {
			parent := v1.Group("/parent")
			parent.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireParent())
			{
				parent.GET("/goals", r.goalController.ListParentGoals)
				parent.GET("/children-progress", r.goalController.ChildrenProgress)
				parent.GET("/children-chores", r.choreController.ChildrenChores)
			}
		}

		// Progress review routes (require a parent token)
		if r.progressController != nil && r.authMiddleware != nil {
			progress := v1.Group("/progress")
			progress.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireParent())
			{
				progress.POST("/:id/approve", r.progressController.ApproveProgress)
				progress.POST("/:id/decline", r.progressController.DeclineProgress)
			}
		}

		// Notification routes (require authentication)
		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.ListNotifications)
				notifications.GET("/unread-count", r.notificationController.UnreadCount)
				notifications.POST("/mark-read", r.notificationController.MarkAllRead)
				notifications.POST("/:id/mark-read", r.notificationController.MarkRead)
			}
		}

		// Chat routes (require authentication)
		if r.chatController != nil && r.authMiddleware != nil {
			sessions := v1.Group("/chat/sessions")
			sessions.Use(r.authMiddleware.Authenticate())
			{
				sessions.POST("", r.chatController.CreateSession)
				sessions.GET("", r.chatController.ListSessions)
				sessions.GET("/:id", r.chatController.GetSession)
				sessions.PUT("/:id", r.chatController.RenameSession)
				sessions.DELETE("/:id", r.chatController.DeleteSession)
			}

			ai := v1.Group("/ai")
			ai.Use(r.authMiddleware.Authenticate())
			{
				ai.POST("/chat", r.chatController.ChatTurn)
			}
		}
	}
}
