package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/repository/postgres"
	"github.com/complyhub/complyhub-api/internal/service/queue"
	"github.com/complyhub/complyhub-api/internal/storage"
	"github.com/complyhub/complyhub-api/internal/worker"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

// Runs the retention chain: the archive worker snapshots old audit events
// into tenant storage, then the cleanup worker deletes the archived rows.
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

	pgRepo := postgres.NewPostgresRepository(dbConnections)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize tenant storage router for archives
	storageRouter := storage.NewRouter(config.DefaultStorageConfig(), appLogger)

	archiveWorker := worker.NewArchiveWorker(
		sqsService,
		pgRepo,
		storageRouter,
		appLogger,
		1,             // worker count
		5*time.Second, // poll interval
	)

	cleanupWorker := worker.NewCleanupWorker(
		sqsService,
		pgRepo,
		appLogger,
		1,             // worker count
		5*time.Second, // poll interval
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	archiveWorker.Start()
	cleanupWorker.Start()
	appLogger.Info("Retention workers started")

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down retention workers...")

	archiveWorker.Stop()
	cleanupWorker.Stop()
	appLogger.Info("Retention workers stopped")
	appLogger.Sync()
}
