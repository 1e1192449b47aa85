// cmd/livesketch-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/georgSquared/livesketch/internal/api/rest/v1"
	"github.com/georgSquared/livesketch/internal/app"
	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/infrastructure/classify"
	"github.com/georgSquared/livesketch/internal/infrastructure/connector"
	"github.com/georgSquared/livesketch/internal/infrastructure/persistence"
	"github.com/georgSquared/livesketch/internal/infrastructure/persistence/models"
	"github.com/georgSquared/livesketch/internal/infrastructure/sketching"
	"github.com/georgSquared/livesketch/internal/pkg/config"
	"github.com/georgSquared/livesketch/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	dataset    datasets.DatasetService
	run        embeddings.EmbeddingRunService
	evaluation evaluation.EvaluationService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.DatasetModel{}, &models.EmbeddingRunModel{}, &models.EvaluationResultModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	datasetRepo, err := persistence.NewGormDatasetRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset repository: %w", err)
	}

	runRepo, err := persistence.NewGormRunRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create run repository: %w", err)
	}

	resultRepo, err := persistence.NewGormResultRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create result repository: %w", err)
	}

	// Initialize dataset connector
	datasetConnector, err := connector.NewMovieLensConnector(cfg.Dataset.CacheDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset connector: %w", err)
	}

	// Model and classifier factories close over the logger so the application
	// services stay free of infrastructure imports
	newEmbedder := func(model string, dimensions int, seed int64) (embeddings.Embedder, error) {
		return sketching.NewEmbedder(model, dimensions, seed, log)
	}
	newClassifier := func(seed int64) (evaluation.Classifier, error) {
		return classify.NewLogisticRegression(seed, log)
	}

	// Initialize services
	datasetService, err := app.NewDatasetService(datasetConnector, datasetRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset service: %w", err)
	}

	runService, err := app.NewEmbeddingRunService(datasetService, runRepo, newEmbedder, cfg.Dataset.IndexDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding run service: %w", err)
	}

	evaluationService, err := app.NewEvaluationService(datasetService, resultRepo, newEmbedder, newClassifier, false, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		dataset:    datasetService,
		run:        runService,
		evaluation: evaluationService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	allowedOrigins := cfg.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, services.dataset, services.run, services.evaluation)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
