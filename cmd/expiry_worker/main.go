package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/repository/composite"
	"github.com/complyhub/complyhub-api/internal/service"
	"github.com/complyhub/complyhub-api/internal/service/queue"
	"github.com/complyhub/complyhub-api/internal/worker"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

// Sweeps temporary limit override requests past their expiry into the
// expired status.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Initialize PostgreSQL with database connections
	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	// Initialize OpenSearch (expired events are searchable like any other)
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize SQS for the audit pipeline
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	auditService := service.NewAuditService(repo, sqsService, nil, appLogger)
	overrideService := service.NewOverrideService(repo, auditService)

	expiryWorker := worker.NewExpiryWorker(overrideService, appLogger, time.Minute)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	expiryWorker.Start()
	appLogger.Info("Expiry worker started")

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down expiry worker...")

	expiryWorker.Stop()
	appLogger.Info("Expiry worker stopped")
	appLogger.Sync()
}
