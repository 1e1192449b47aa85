//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/infrastructure/persistence/models"
	"github.com/georgSquared/livesketch/internal/pkg/config"
	"github.com/georgSquared/livesketch/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	DatasetRepo datasets.DatasetRepository
	RunRepo     embeddings.EmbeddingRunRepository
	ResultRepo  evaluation.ResultRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type:   config.SqliteDbType,
			DSN:    ":memory:",
			DBName: "livesketch_test",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.DatasetModel{}, &models.EmbeddingRunModel{}, &models.EvaluationResultModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	datasetRepo, err := NewGormDatasetRepository(db, logger)
	require.NoError(t, err, "Failed to create dataset repository")

	runRepo, err := NewGormRunRepository(db, logger)
	require.NoError(t, err, "Failed to create run repository")

	resultRepo, err := NewGormResultRepository(db, logger)
	require.NoError(t, err, "Failed to create result repository")

	return &TestContext{
		DB:          db,
		DatasetRepo: datasetRepo,
		RunRepo:     runRepo,
		ResultRepo:  resultRepo,
	}
}

// CreateTestDataset creates dataset metadata with default values
func CreateTestDataset(t *testing.T, name string) *datasets.DatasetMeta {
	t.Helper()

	if name == "" {
		name = "ml-latest-small"
	}

	return &datasets.DatasetMeta{
		ID:              uuid.NewString(),
		Name:            name,
		SourceURL:       config.MovieLensSmallURL,
		LocalPath:       "/tmp/livesketch/ml-latest-small/ratings.csv",
		MinScore:        config.DefaultMinScore,
		ArchiveSize:     978202,
		ArchiveChecksum: "0e33842e24a9c977be4e0b448e38da893e622a9f416b768d6231be68aa90e3bf",
		LeftCount:       610,
		RightCount:      9724,
		EdgeCount:       100836,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestRun creates embedding run metadata linked to a dataset
func CreateTestRun(t *testing.T, datasetID string) *embeddings.RunMeta {
	t.Helper()

	return &embeddings.RunMeta{
		ID:              uuid.NewString(),
		DatasetID:       datasetID,
		Model:           embeddings.ModelLiveSketch,
		Dimensions:      128,
		Seed:            42,
		IndexPath:       "/tmp/livesketch/indexes/" + uuid.NewString() + ".json",
		BuildDurationMs: 1500,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestResult creates an evaluation result linked to a dataset
func CreateTestResult(t *testing.T, datasetID, metric string) *evaluation.Result {
	t.Helper()

	result := &evaluation.Result{
		ID:              uuid.NewString(),
		DatasetID:       datasetID,
		Model:           embeddings.ModelLiveSketch,
		Dimensions:      128,
		Metric:          metric,
		Value:           0.87,
		ElapsedMs:       2300,
		DateTimeCreated: time.Now(),
	}

	switch metric {
	case evaluation.MetricROCAUC:
		result.Operator = string(embeddings.OperatorHadamard)
	case evaluation.MetricPrecisionAtK:
		result.Similarity = string(embeddings.SimilarityHamming)
		result.K = 100
	}

	return result
}
