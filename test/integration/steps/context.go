// Package steps provides step definitions for BDD integration tests. The
// scenarios run against a real HTTP server wired to an in-memory SQLite
// database and a miniredis instance.
package steps

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

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
	"github.com/aidiy/backend/internal/integration/entrypoint/controller"
	"github.com/aidiy/backend/internal/integration/entrypoint/middleware"
	"github.com/aidiy/backend/internal/integration/persistence"
	"github.com/aidiy/backend/internal/integration/persistence/model"
	"github.com/aidiy/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	redis      *redis.Client
	serverPort int

	tokenService adapter.TokenService
	otpService   adapter.OTPService

	accessToken  string
	refreshToken string
	otpCode      string

	currentParentID       uuid.UUID
	currentParentEmail    string
	currentKidID          uuid.UUID
	currentKidUsername    string
	currentGoalID         uuid.UUID
	choreIDs              []uuid.UUID
	lastChoreID           uuid.UUID
	currentSubmissionID   uuid.UUID
	currentNotificationID uuid.UUID
	currentSessionID      uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testRedis *redis.Client
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		redis:      mock.NewRedis(),
		db: mock.NewDb("aidiy", map[string]any{
			"users":                &model.UserModel{},
			"pending_users":        &model.PendingUserModel{},
			"refresh_tokens":       &model.RefreshTokenModel{},
			"children":             &model.ChildModel{},
			"goals":                &model.GoalModel{},
			"chores":               &model.ChoreModel{},
			"progress_submissions": &model.ProgressSubmissionModel{},
			"notifications":        &model.NotificationModel{},
			"chat_sessions":        &model.ChatSessionModel{},
			"email_queue":          &model.EmailQueueModel{},
		}),
	}

	testDB = test.db
	testRedis = test.redis

	test.tokenService = adapters.NewTokenService(testJWTSecret, persistence.NewTokenRepository(test.db.DbConn))
	test.otpService = adapters.NewOTPService(test.redis)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Account setup steps
	ctx.Given(`^a parent exists with email "([^"]*)"$`, test.aParentExistsWithEmail)
	ctx.Given(`^a parent exists with email "([^"]*)" and password "([^"]*)"$`, test.aParentExistsWithEmailAndPassword)
	ctx.Given(`^a pending registration exists for "([^"]*)"$`, test.aPendingRegistrationExistsFor)
	ctx.Given(`^a kid "([^"]*)" exists for parent "([^"]*)" with login code "([^"]*)"$`, test.aKidExistsForParentWithLoginCode)
	ctx.Given(`^I am logged in as parent "([^"]*)"$`, test.iAmLoggedInAsParent)
	ctx.Given(`^I am logged in as kid "([^"]*)"$`, test.iAmLoggedInAsKid)

	// One-time code setup steps
	ctx.Given(`^a verification code was issued for "([^"]*)"$`, test.aVerificationCodeWasIssuedFor)
	ctx.Given(`^a password reset code was issued for "([^"]*)"$`, test.aPasswordResetCodeWasIssuedFor)
	ctx.Given(`^a validated password reset code exists for "([^"]*)"$`, test.aValidatedPasswordResetCodeExistsFor)

	// Goal setup steps
	ctx.Given(`^a "([^"]*)" goal "([^"]*)" of amount "([^"]*)" over (\d+) weeks exists for kid "([^"]*)"$`, test.aGoalExistsForKid)
	ctx.Given(`^the goal has saved "([^"]*)"$`, test.theGoalHasSaved)

	// Chore setup steps
	ctx.Given(`^a chore "([^"]*)" with reward "([^"]*)" exists$`, test.aChoreWithRewardExists)
	ctx.Given(`^a chore "([^"]*)" with reward "([^"]*)" exists for kid "([^"]*)"$`, test.aChoreWithRewardExistsForKid)
	ctx.Given(`^a chore "([^"]*)" with reward "([^"]*)" is assigned to the goal$`, test.aChoreIsAssignedToTheGoal)
	ctx.Given(`^a chore "([^"]*)" with reward "([^"]*)" is awaiting approval on the goal$`, test.aChoreIsAwaitingApprovalOnTheGoal)

	// Progress setup steps
	ctx.Given(`^a pending progress submission of "([^"]*)" exists for the goal$`, test.aPendingProgressSubmissionExistsForTheGoal)

	// Notification setup steps
	ctx.Given(`^an unread notification exists for "([^"]*)"$`, test.anUnreadNotificationExistsFor)

	// Chat setup steps
	ctx.Given(`^a chat session "([^"]*)" exists for "([^"]*)"$`, test.aChatSessionExistsFor)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.otpCode = ""
	t.currentParentID = uuid.Nil
	t.currentParentEmail = ""
	t.currentKidID = uuid.Nil
	t.currentKidUsername = ""
	t.currentGoalID = uuid.Nil
	t.choreIDs = nil
	t.lastChoreID = uuid.Nil
	t.currentSubmissionID = uuid.Nil
	t.currentNotificationID = uuid.Nil
	t.currentSessionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if t.redis != nil {
		_ = mock.ClearRedis(t.redis)
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

			// Repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			pendingRepo := persistence.NewPendingUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			childRepo := persistence.NewChildRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			choreRepo := persistence.NewChoreRepository(testDB.DbConn)
			progressRepo := persistence.NewProgressRepository(testDB.DbConn)
			notificationRepo := persistence.NewNotificationRepository(testDB.DbConn)
			chatRepo := persistence.NewChatRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Adapters and services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			otpService := adapters.NewOTPService(testRedis)
			googleVerifier := adapters.NewGoogleVerifier("test-client-id")
			aiService := adapters.NewGeminiService("", "")
			emailService := email.NewService(emailQueueRepo, "http://localhost:3000")

			// Auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, pendingRepo, passwordService)
			sendOTPUseCase := auth.NewSendOTPUseCase(userRepo, pendingRepo, otpService, emailService)
			verifyOTPUseCase := auth.NewVerifyOTPUseCase(otpService, userRepo, pendingRepo)
			resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, otpService, passwordService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			kidLoginUseCase := auth.NewKidLoginUseCase(childRepo, passwordService, tokenService)
			googleLoginUseCase := auth.NewGoogleLoginUseCase(googleVerifier, userRepo, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUseCase(tokenService)

			// User use cases
			getProfileUseCase := user.NewGetProfileUseCase(userRepo, childRepo, goalRepo)
			updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
			listChildrenUseCase := user.NewListChildrenUseCase(childRepo)
			addChildUseCase := user.NewAddChildUseCase(childRepo, passwordService)
			updateChildUseCase := user.NewUpdateChildUseCase(childRepo, passwordService)
			completeAssessmentUseCase := user.NewCompleteAssessmentUseCase(userRepo)

			// Goal use cases
			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, childRepo)
			createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, childRepo, notificationRepo)
			approveGoalUseCase := goal.NewApproveGoalUseCase(goalRepo, childRepo, notificationRepo, emailService, logger)
			declineGoalUseCase := goal.NewDeclineGoalUseCase(goalRepo, notificationRepo)
			listParentGoalsUseCase := goal.NewListParentGoalsUseCase(goalRepo)
			childrenProgressUseCase := goal.NewChildrenProgressUseCase(childRepo, goalRepo)

			// Chore use cases
			listChoresUseCase := chore.NewListChoresUseCase(choreRepo)
			createChoreUseCase := chore.NewCreateChoreUseCase(choreRepo, childRepo)
			updateChoreUseCase := chore.NewUpdateChoreUseCase(choreRepo, childRepo)
			deleteChoreUseCase := chore.NewDeleteChoreUseCase(choreRepo)
			assignToGoalUseCase := chore.NewAssignToGoalUseCase(choreRepo, goalRepo, childRepo)
			listGoalChoresUseCase := chore.NewListGoalChoresUseCase(choreRepo)
			questViewUseCase := chore.NewQuestViewUseCase(goalRepo, choreRepo, childRepo)
			recommendChoresUseCase := chore.NewRecommendChoresUseCase(aiService, childRepo, goalRepo, logger)
			childrenChoresUseCase := chore.NewChildrenChoresUseCase(childRepo, choreRepo)

			// Progress use cases
			submitProgressUseCase := progress.NewSubmitProgressUseCase(goalRepo, choreRepo, childRepo, progressRepo, notificationRepo)
			getProgressViewUseCase := progress.NewGetProgressViewUseCase(goalRepo, choreRepo, childRepo)
			approveProgressUseCase := progress.NewApproveProgressUseCase(progressRepo, goalRepo, choreRepo, childRepo, notificationRepo, emailService, logger)
			declineProgressUseCase := progress.NewDeclineProgressUseCase(progressRepo, goalRepo, choreRepo, childRepo, notificationRepo, logger)

			// Notification use cases
			listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
			unreadCountUseCase := notification.NewUnreadCountUseCase(notificationRepo)
			markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)
			markAllReadUseCase := notification.NewMarkAllReadUseCase(notificationRepo)

			// Chat use cases
			chatTurnUseCase := chat.NewChatTurnUseCase(chatRepo, aiService)
			createSessionUseCase := chat.NewCreateSessionUseCase(chatRepo)
			listSessionsUseCase := chat.NewListSessionsUseCase(chatRepo)
			getSessionUseCase := chat.NewGetSessionUseCase(chatRepo)
			renameSessionUseCase := chat.NewRenameSessionUseCase(chatRepo)
			deleteSessionUseCase := chat.NewDeleteSessionUseCase(chatRepo)

			// Controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
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
				getProgressViewUseCase,
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

			// Middleware: a generous rate limit so scenarios never trip it
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
