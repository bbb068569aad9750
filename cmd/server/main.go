package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sharafhazem/portfolio-ops/adapters/event"
	httpAdapter "github.com/sharafhazem/portfolio-ops/adapters/http"
	"github.com/sharafhazem/portfolio-ops/adapters/media_storage"
	"github.com/sharafhazem/portfolio-ops/adapters/notify"
	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	authUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/auth"
	notifyUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/notify"
	profileUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/profile"
	projectUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/project"
	uploadUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/upload"
	"github.com/sharafhazem/portfolio-ops/internal/config"
	"github.com/sharafhazem/portfolio-ops/pkg/auth"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
	"github.com/sharafhazem/portfolio-ops/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio Ops API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing
	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-ops-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer provider", err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				appLogger.Error("tracer shutdown failed", err)
			}
		}()
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Redis and Kafka are optional. Without them the API serves straight
	// from Postgres and skips event publishing.
	var renderCache *persistence.RenderCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Warn("cannot connect Redis, render cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			renderCache = persistence.NewRenderCache(redisClient, appLogger)
		}
	}

	var eventPublisher event.ContentEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Warn("cannot init Kafka, event publishing disabled", zap.Error(err))
		} else {
			defer kafkaClient.Close()
			eventPublisher = kafkaClient
		}
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	signer := media_storage.NewCloudinarySigner(cfg)

	var channels []notify.Channel
	if cfg.Notify.WebhookURL != "" {
		channels = append(channels, notify.NewDiscordChannel(cfg.Notify.WebhookURL))
	}
	if cfg.Mail.User != "" && cfg.Mail.Pass != "" {
		channels = append(channels, notify.NewEmailChannel(cfg.Mail.User, cfg.Mail.Pass, cfg.Mail.To))
	}
	if cfg.Notify.FormRelayURL != "" {
		channels = append(channels, notify.NewFormRelayChannel(cfg.Notify.FormRelayURL))
	}
	dispatcher := notify.NewDispatcher(appLogger, channels...)
	defer dispatcher.Wait()

	adminBootstrap := authUC.AdminBootstrap{
		Username: cfg.Auth.AdminUsername,
		Password: cfg.Auth.AdminPassword,
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, adminBootstrap, appLogger)
	registerUseCase := authUC.NewRegisterUseCase(userRepo, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, renderCache, eventPublisher)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, renderCache, eventPublisher)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, renderCache)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, renderCache, eventPublisher)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, renderCache, eventPublisher)
	signUploadUseCase := uploadUC.NewSignUploadUseCase(signer)
	contactUseCase := notifyUC.NewContactUseCase(dispatcher)
	bookingUseCase := notifyUC.NewBookingUseCase(dispatcher)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, registerUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		listProjectsUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		appLogger,
	)
	uploadHandler := httpAdapter.NewUploadHandler(signUploadUseCase)
	notifyHandler := httpAdapter.NewNotifyHandler(contactUseCase, bookingUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{

		admin := api.Group("/admin")
		{

			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware, httpAdapter.AdminOnly())
			{
				adminPrivate.PUT("/profile", profileHandler.UpdateProfile)

				adminPrivate.POST("/projects", projectHandler.CreateProject)
				adminPrivate.PUT("/projects", projectHandler.UpdateProject)
				adminPrivate.DELETE("/projects", projectHandler.DeleteProject)

				adminPrivate.POST("/sign-upload", uploadHandler.SignUpload)
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

			public.GET("/profile", profileHandler.GetProfile)
			public.GET("/projects", projectHandler.ListProjects)

			public.POST("/contact", notifyHandler.Contact)
			public.POST("/booking", notifyHandler.Booking)
			public.POST("/register", authHandler.Register)
		}
	}

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
