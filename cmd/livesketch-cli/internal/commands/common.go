package commands

import (
	"fmt"
	"os"
	"path/filepath"

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
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// cliServices bundles the application services shared by all CLI commands.
type cliServices struct {
	dataset    datasets.DatasetService
	run        embeddings.EmbeddingRunService
	evaluation evaluation.EvaluationService
}

// databaseSettingsFromEnv builds database settings from LIVESKETCH_DB_DSN,
// falling back to a SQLite file inside the cache directory.
func databaseSettingsFromEnv(cacheDir string) config.DatabaseSettings {
	if dsn := os.Getenv("LIVESKETCH_DB_DSN"); dsn != "" {
		return config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    dsn,
			DBName: "livesketch",
		}
	}

	return config.DatabaseSettings{
		Type:   config.SqliteDbType,
		DSN:    filepath.Join(cacheDir, "livesketch.db"),
		DBName: "livesketch",
	}
}

// cacheDirFromEnv returns LIVESKETCH_CACHE_DIR or the default cache directory.
func cacheDirFromEnv() string {
	if dir := os.Getenv("LIVESKETCH_CACHE_DIR"); dir != "" {
		return dir
	}
	return config.DefaultCacheDir
}

// indexDirFromEnv returns LIVESKETCH_INDEX_DIR or the default index directory.
func indexDirFromEnv() string {
	if dir := os.Getenv("LIVESKETCH_INDEX_DIR"); dir != "" {
		return dir
	}
	return config.DefaultIndexDir
}

// setupServices wires the repositories, connector and application services for
// CLI usage. The pairwise similarity scan renders a progress bar.
func setupServices(loggerInstance logger.Logger) (*cliServices, error) {
	cacheDir := cacheDirFromEnv()
	if err := os.MkdirAll(cacheDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := persistence.NewDBConnection(databaseSettingsFromEnv(cacheDir))
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.DatasetModel{}, &models.EmbeddingRunModel{}, &models.EvaluationResultModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	datasetRepo, err := persistence.NewGormDatasetRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset repository: %w", err)
	}

	runRepo, err := persistence.NewGormRunRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create run repository: %w", err)
	}

	resultRepo, err := persistence.NewGormResultRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create result repository: %w", err)
	}

	datasetConnector, err := connector.NewMovieLensConnector(cacheDir, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset connector: %w", err)
	}

	newEmbedder := func(model string, dimensions int, seed int64) (embeddings.Embedder, error) {
		return sketching.NewEmbedder(model, dimensions, seed, loggerInstance)
	}
	newClassifier := func(seed int64) (evaluation.Classifier, error) {
		return classify.NewLogisticRegression(seed, loggerInstance)
	}

	datasetService, err := app.NewDatasetService(datasetConnector, datasetRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset service: %w", err)
	}

	runService, err := app.NewEmbeddingRunService(datasetService, runRepo, newEmbedder, indexDirFromEnv(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding run service: %w", err)
	}

	evaluationService, err := app.NewEvaluationService(datasetService, resultRepo, newEmbedder, newClassifier, true, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation service: %w", err)
	}

	return &cliServices{
		dataset:    datasetService,
		run:        runService,
		evaluation: evaluationService,
	}, nil
}
