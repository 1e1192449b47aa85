//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/domain/graph"
	"github.com/georgSquared/livesketch/internal/infrastructure/classify"
	"github.com/georgSquared/livesketch/internal/infrastructure/sketching"
	"github.com/georgSquared/livesketch/internal/pkg/logger"
	"github.com/georgSquared/livesketch/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// denseGraph builds a bipartite graph large enough for an edge split: two
// user communities that rate disjoint item groups.
func denseGraph(t *testing.T) *graph.Bipartite {
	t.Helper()

	g, err := graph.NewBipartite(8, 8)
	require.NoError(t, err)

	for u := 0; u < 4; u++ {
		for v := 8; v < 12; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	for u := 4; u < 8; u++ {
		for v := 12; v < 16; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	return g
}

func setupEvaluationService(t *testing.T, loggerInstance logger.Logger, g *graph.Bipartite) (evaluation.EvaluationService, string, *MockResultRepository) {
	t.Helper()

	meta := &datasets.DatasetMeta{
		ID:        uuid.NewString(),
		Name:      "ml-latest-small",
		LocalPath: "/tmp/livesketch/ml-latest-small/ratings.csv",
		MinScore:  3.0,
	}

	mockConnector := new(MockDatasetConnector)
	mockDatasetRepo := new(MockDatasetRepository)
	mockDatasetRepo.On("GetByID", mock.Anything, meta.ID).Return(meta, nil)
	mockConnector.On("BuildGraph", meta.LocalPath, meta.MinScore).Return(g, nil)

	datasetService, err := NewDatasetService(mockConnector, mockDatasetRepo, loggerInstance)
	require.NoError(t, err)

	mockResultRepo := new(MockResultRepository)

	newEmbedder := func(model string, dimensions int, seed int64) (embeddings.Embedder, error) {
		return sketching.NewEmbedder(model, dimensions, seed, loggerInstance)
	}
	newClassifier := func(seed int64) (evaluation.Classifier, error) {
		return classify.NewLogisticRegression(seed, loggerInstance)
	}

	service, err := NewEvaluationService(datasetService, mockResultRepo, newEmbedder, newClassifier, false, loggerInstance)
	require.NoError(t, err)
	return service, meta.ID, mockResultRepo
}

func TestEvaluationService_EvaluateAUC(t *testing.T) {
	loggerInstance := testutil.SetupTestLogger(t)
	service, datasetID, mockResultRepo := setupEvaluationService(t, loggerInstance, denseGraph(t))

	mockResultRepo.On("Create", mock.Anything, mock.AnythingOfType("*evaluation.Result")).Return(nil)

	result, err := service.EvaluateAUC(context.Background(), evaluation.AUCParams{
		DatasetID:    datasetID,
		Model:        embeddings.ModelLiveSketch,
		Dimensions:   64,
		Operator:     embeddings.OperatorHadamard,
		TestFraction: 0.2,
		Seed:         42,
	})
	require.NoError(t, err)

	assert.Equal(t, evaluation.MetricROCAUC, result.Metric)
	assert.GreaterOrEqual(t, result.Value, 0.0)
	assert.LessOrEqual(t, result.Value, 1.0)
	assert.Equal(t, string(embeddings.OperatorHadamard), result.Operator)
	mockResultRepo.AssertExpectations(t)
}

func TestEvaluationService_EvaluateAUC_InvalidFraction(t *testing.T) {
	loggerInstance := testutil.SetupTestLogger(t)
	service, datasetID, mockResultRepo := setupEvaluationService(t, loggerInstance, denseGraph(t))

	_, err := service.EvaluateAUC(context.Background(), evaluation.AUCParams{
		DatasetID:    datasetID,
		Model:        embeddings.ModelLiveSketch,
		Dimensions:   64,
		Operator:     embeddings.OperatorHadamard,
		TestFraction: 1.5,
		Seed:         42,
	})
	require.Error(t, err)
	mockResultRepo.AssertNotCalled(t, "Create")
}

func TestEvaluationService_EvaluatePrecisionAtK(t *testing.T) {
	loggerInstance := testutil.SetupTestLogger(t)
	service, datasetID, mockResultRepo := setupEvaluationService(t, loggerInstance, denseGraph(t))

	mockResultRepo.On("Create", mock.Anything, mock.AnythingOfType("*evaluation.Result")).Return(nil)

	result, err := service.EvaluatePrecisionAtK(context.Background(), evaluation.PrecisionParams{
		DatasetID:  datasetID,
		Model:      embeddings.ModelLiveSketch,
		Dimensions: 64,
		Similarity: embeddings.SimilarityHamming,
		K:          10,
		Seed:       42,
	})
	require.NoError(t, err)

	assert.Equal(t, evaluation.MetricPrecisionAtK, result.Metric)
	assert.Equal(t, 10, result.K)
	assert.GreaterOrEqual(t, result.Value, 0.0)
	assert.LessOrEqual(t, result.Value, 1.0)
	mockResultRepo.AssertExpectations(t)
}

func TestEvaluationService_EvaluatePrecisionAtK_CapsKToPairCount(t *testing.T) {
	loggerInstance := testutil.SetupTestLogger(t)

	g, err := graph.NewBipartite(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))

	service, datasetID, mockResultRepo := setupEvaluationService(t, loggerInstance, g)
	mockResultRepo.On("Create", mock.Anything, mock.AnythingOfType("*evaluation.Result")).Return(nil)

	result, err := service.EvaluatePrecisionAtK(context.Background(), evaluation.PrecisionParams{
		DatasetID:  datasetID,
		Model:      embeddings.ModelRandomProjection,
		Dimensions: 8,
		Similarity: embeddings.SimilarityCosine,
		K:          1000,
		Seed:       42,
	})
	require.NoError(t, err)

	// 4 nodes give 6 unordered pairs
	assert.Equal(t, 6, result.K)
}

func TestEvaluationService_List(t *testing.T) {
	loggerInstance := testutil.SetupTestLogger(t)
	service, datasetID, mockResultRepo := setupEvaluationService(t, loggerInstance, denseGraph(t))

	stored := &evaluation.Result{ID: uuid.NewString(), DatasetID: datasetID, Metric: evaluation.MetricROCAUC, Value: 0.9}
	mockResultRepo.On("List", mock.Anything, mock.Anything).Return([]*evaluation.Result{stored}, nil)

	results, err := service.List(context.Background(), &evaluation.ResultQuery{DatasetID: datasetID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, stored.ID, results[0].ID)
	mockResultRepo.AssertExpectations(t)
}
