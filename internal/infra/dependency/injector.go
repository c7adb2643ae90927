// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aidiy/backend/config"
	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/application/usecase/auth"
	"github.com/aidiy/backend/internal/application/usecase/chat"
	"github.com/aidiy/backend/internal/application/usecase/chore"
	"github.com/aidiy/backend/internal/application/usecase/goal"
	"github.com/aidiy/backend/internal/application/usecase/notification"
	"github.com/aidiy/backend/internal/application/usecase/progress"
	"github.com/aidiy/backend/internal/application/usecase/user"
	"github.com/aidiy/backend/internal/infra/server/router"
	"github.com/aidiy/backend/internal/integration/adapters"
	"github.com/aidiy/backend/internal/integration/email"
	"github.com/aidiy/backend/internal/integration/email/templates"
	"github.com/aidiy/backend/internal/integration/entrypoint/controller"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
	"github.com/aidiy/backend/internal/integration/persistence"
	"github.com/aidiy/backend/internal/integration/scheduler"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	GoalSweeper *scheduler.GoalSweeper
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	logger := slog.Default()

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	pendingUserRepo := persistence.NewPendingUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	childRepo := persistence.NewChildRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	choreRepo := persistence.NewChoreRepository(db)
	progressRepo := persistence.NewProgressRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	chatRepo := persistence.NewChatRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	otpService := adapters.NewOTPService(redisClient)
	googleVerifier := adapters.NewGoogleVerifier(cfg.Google.ClientID)
	aiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create the email worker pipeline
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, pendingUserRepo, passwordService)
	sendOTPUseCase := auth.NewSendOTPUseCase(userRepo, pendingUserRepo, otpService, emailService)
	verifyOTPUseCase := auth.NewVerifyOTPUseCase(otpService, userRepo, pendingUserRepo)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, otpService, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	kidLoginUseCase := auth.NewKidLoginUseCase(childRepo, passwordService, tokenService)
	googleLoginUseCase := auth.NewGoogleLoginUseCase(googleVerifier, userRepo, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUseCase(tokenService)

	// Create user use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo, childRepo, goalRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	listChildrenUseCase := user.NewListChildrenUseCase(childRepo)
	addChildUseCase := user.NewAddChildUseCase(childRepo, passwordService)
	updateChildUseCase := user.NewUpdateChildUseCase(childRepo, passwordService)
	completeAssessmentUseCase := user.NewCompleteAssessmentUseCase(userRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, childRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, childRepo, notificationRepo)
	approveGoalUseCase := goal.NewApproveGoalUseCase(goalRepo, childRepo, notificationRepo, emailService, logger)
	declineGoalUseCase := goal.NewDeclineGoalUseCase(goalRepo, notificationRepo)
	listParentGoalsUseCase := goal.NewListParentGoalsUseCase(goalRepo)
	childrenProgressUseCase := goal.NewChildrenProgressUseCase(childRepo, goalRepo)
	expireGoalsUseCase := goal.NewExpireGoalsUseCase(goalRepo, childRepo, notificationRepo, logger)

	// Create chore use cases
	listChoresUseCase := chore.NewListChoresUseCase(choreRepo)
	createChoreUseCase := chore.NewCreateChoreUseCase(choreRepo, childRepo)
	updateChoreUseCase := chore.NewUpdateChoreUseCase(choreRepo, childRepo)
	deleteChoreUseCase := chore.NewDeleteChoreUseCase(choreRepo)
	assignToGoalUseCase := chore.NewAssignToGoalUseCase(choreRepo, goalRepo, childRepo)
	listGoalChoresUseCase := chore.NewListGoalChoresUseCase(choreRepo)
	questViewUseCase := chore.NewQuestViewUseCase(goalRepo, choreRepo, childRepo)
	recommendChoresUseCase := chore.NewRecommendChoresUseCase(aiService, childRepo, goalRepo, logger)
	childrenChoresUseCase := chore.NewChildrenChoresUseCase(childRepo, choreRepo)

	// Create progress use cases
	submitProgressUseCase := progress.NewSubmitProgressUseCase(goalRepo, choreRepo, childRepo, progressRepo, notificationRepo)
	progressViewUseCase := progress.NewGetProgressViewUseCase(goalRepo, choreRepo, childRepo)
	approveProgressUseCase := progress.NewApproveProgressUseCase(progressRepo, goalRepo, choreRepo, childRepo, notificationRepo, emailService, logger)
	declineProgressUseCase := progress.NewDeclineProgressUseCase(progressRepo, goalRepo, choreRepo, childRepo, notificationRepo, logger)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	unreadCountUseCase := notification.NewUnreadCountUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)
	markAllReadUseCase := notification.NewMarkAllReadUseCase(notificationRepo)

	// Create chat use cases
	chatTurnUseCase := chat.NewChatTurnUseCase(chatRepo, aiService)
	createSessionUseCase := chat.NewCreateSessionUseCase(chatRepo)
	listSessionsUseCase := chat.NewListSessionsUseCase(chatRepo)
	getSessionUseCase := chat.NewGetSessionUseCase(chatRepo)
	renameSessionUseCase := chat.NewRenameSessionUseCase(chatRepo)
	deleteSessionUseCase := chat.NewDeleteSessionUseCase(chatRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		sendOTPUseCase,
		verifyOTPUseCase,
		resetPasswordUseCase,
		loginUseCase,
		kidLoginUseCase,
		googleLoginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		listChildrenUseCase,
		addChildUseCase,
		updateChildUseCase,
		completeAssessmentUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		approveGoalUseCase,
		declineGoalUseCase,
		listParentGoalsUseCase,
		childrenProgressUseCase,
		listGoalChoresUseCase,
		questViewUseCase,
		progressViewUseCase,
		submitProgressUseCase,
	)

	choreController := controller.NewChoreController(
		listChoresUseCase,
		createChoreUseCase,
		updateChoreUseCase,
		deleteChoreUseCase,
		assignToGoalUseCase,
		recommendChoresUseCase,
		childrenChoresUseCase,
	)

	progressController := controller.NewProgressController(
		approveProgressUseCase,
		declineProgressUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		unreadCountUseCase,
		markReadUseCase,
		markAllReadUseCase,
	)

	chatController := controller.NewChatController(
		chatTurnUseCase,
		createSessionUseCase,
		listSessionsUseCase,
		getSessionUseCase,
		renameSessionUseCase,
		deleteSessionUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		goalController,
		choreController,
		progressController,
		notificationController,
		chatController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create background jobs
	goalSweeper := scheduler.NewGoalSweeper(expireGoalsUseCase, tokenRepo, scheduler.SweeperConfig{
		PollInterval: cfg.Sweeper.PollInterval,
		BatchSize:    cfg.Sweeper.BatchSize,
	})

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		GoalSweeper: goalSweeper,
	}, nil
}
