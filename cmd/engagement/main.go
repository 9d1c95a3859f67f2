package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fanloop/fanloop/internal/pkg/config"
	"github.com/fanloop/fanloop/internal/pkg/database"
	"github.com/fanloop/fanloop/internal/pkg/health"
	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/middleware"
	natspkg "github.com/fanloop/fanloop/internal/pkg/nats"
	nrpkg "github.com/fanloop/fanloop/internal/pkg/newrelic"
	"github.com/fanloop/fanloop/internal/pkg/server"

	engagementGateway "github.com/fanloop/fanloop/services/engagement/gateway"
	engagementHandler "github.com/fanloop/fanloop/services/engagement/handler"
	engagementRepository "github.com/fanloop/fanloop/services/engagement/repository"
	engagementUsecase "github.com/fanloop/fanloop/services/engagement/usecase"
	ledgerHandler "github.com/fanloop/fanloop/services/ledger/handler"
	ledgerRepository "github.com/fanloop/fanloop/services/ledger/repository"
	ledgerUsecase "github.com/fanloop/fanloop/services/ledger/usecase"
	notificationGateway "github.com/fanloop/fanloop/services/notification/gateway"
	notificationHandler "github.com/fanloop/fanloop/services/notification/handler"
	notificationRepository "github.com/fanloop/fanloop/services/notification/repository"
	notificationUsecase "github.com/fanloop/fanloop/services/notification/usecase"
	raffleHandler "github.com/fanloop/fanloop/services/raffle/handler"
	raffleRepository "github.com/fanloop/fanloop/services/raffle/repository"
	raffleUsecase "github.com/fanloop/fanloop/services/raffle/usecase"
)

func main() {
	appName := "fanloop-engagement"
	configs := config.InitConfig(".env")

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Initialize repositories
	ledgerRepo := ledgerRepository.NewLedgerRepository(db)
	engagementRepo := engagementRepository.NewEngagementRepository(db)
	notificationRepo := notificationRepository.NewNotificationRepository(db)
	raffleRepo := raffleRepository.NewRaffleRepository(db)

	// Initialize gateways
	aiGW := engagementGateway.NewAIGateway(configs)
	providerGW := notificationGateway.NewProviderGateway(configs)

	// Initialize use cases
	ledgerUC := ledgerUsecase.NewLedgerUC(configs, ledgerRepo, natsClient)
	engagementUC := engagementUsecase.NewEngagementUC(configs, engagementRepo, aiGW, natsClient)
	notificationUC := notificationUsecase.NewNotificationUC(configs, notificationRepo, providerGW, engagementUC, redisClient, natsClient)
	raffleUC := raffleUsecase.NewRaffleUC(configs, raffleRepo, ledgerUC, natsClient)

	// Initialize HTTP handlers
	ledgerH := ledgerHandler.NewLedgerHandler(ledgerUC, configs)
	engagementH := engagementHandler.NewEngagementHandler(engagementUC)
	notificationH := notificationHandler.NewNotificationHandler(notificationUC, configs)
	raffleH := raffleHandler.NewRaffleHandler(raffleUC)

	// Initialize NATS consumers
	ledgerNats := ledgerHandler.NewNatsHandler(ledgerUC, natsClient, configs)
	if err := ledgerNats.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize ledger NATS consumers", zap.Error(err))
	}
	engagementNats := engagementHandler.NewNatsHandler(engagementUC, natsClient)
	if err := engagementNats.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize engagement NATS consumers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	ledgerH.RegisterRoutes(e, configs.JWT, configs.Cron.Secret)
	engagementH.RegisterRoutes(e, configs.Cron.Secret)
	notificationH.RegisterRoutes(e, configs.Cron.Secret)
	raffleH.RegisterRoutes(e, configs.Cron.Secret)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
