package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/finbank/transaction-service/internal/pkg/config"
	"github.com/finbank/transaction-service/internal/pkg/database"
	"github.com/finbank/transaction-service/internal/pkg/health"
	"github.com/finbank/transaction-service/internal/pkg/logger"
	"github.com/finbank/transaction-service/internal/pkg/middleware"
	nsqpkg "github.com/finbank/transaction-service/internal/pkg/nsq"
	"github.com/finbank/transaction-service/internal/pkg/server"
	"github.com/finbank/transaction-service/services/transaction"
	"github.com/finbank/transaction-service/services/transaction/gateway"
	"github.com/finbank/transaction-service/services/transaction/handler"
	httpHandler "github.com/finbank/transaction-service/services/transaction/handler/http"
	"github.com/finbank/transaction-service/services/transaction/repository"
	"github.com/finbank/transaction-service/services/transaction/usecase"
)

func main() {
	appName := "transaction-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/transaction.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize Redis client for the list cache
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer when event publication is configured
	var transactionGW transaction.TransactionGW
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
		transactionGW = gateway.NewTransactionGW(producer)
	}

	// Initialize repository and cache
	ledgerRepo := repository.NewLedgerRepo()
	listCache := repository.NewTransactionCacheRepo(redisClient, configs.Cache)

	// Initialize usecase
	transactionUC := usecase.NewTransactionUC(ledgerRepo, listCache, transactionGW)

	// Initialize handlers
	transactionHandler := httpHandler.NewTransactionHandler(transactionUC)
	h := handler.NewHandler(transactionHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, redisClient)
	h.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
