//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/domain/graph"

	"github.com/stretchr/testify/mock"
)

// MockDatasetService is a mock implementation of DatasetService
type MockDatasetService struct {
	mock.Mock
}

func (m *MockDatasetService) Fetch(ctx context.Context, name, sourceURL string, minScore float64) (*datasets.DatasetMeta, error) {
	args := m.Called(ctx, name, sourceURL, minScore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.DatasetMeta), args.Error(1)
}

func (m *MockDatasetService) LoadGraph(ctx context.Context, datasetID string) (*graph.Bipartite, *datasets.DatasetMeta, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*graph.Bipartite), args.Get(1).(*datasets.DatasetMeta), args.Error(2)
}

func (m *MockDatasetService) List(ctx context.Context, query *datasets.DatasetQuery) ([]*datasets.DatasetMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*datasets.DatasetMeta), args.Error(1)
}

func (m *MockDatasetService) GetByID(ctx context.Context, datasetID string) (*datasets.DatasetMeta, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.DatasetMeta), args.Error(1)
}

func (m *MockDatasetService) DeleteByID(ctx context.Context, datasetID string) error {
	args := m.Called(ctx, datasetID)
	return args.Error(0)
}

// MockEmbeddingRunService is a mock implementation of EmbeddingRunService
type MockEmbeddingRunService struct {
	mock.Mock
}

func (m *MockEmbeddingRunService) Run(ctx context.Context, datasetID, model string, dimensions int, seed int64) (*embeddings.RunMeta, error) {
	args := m.Called(ctx, datasetID, model, dimensions, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*embeddings.RunMeta), args.Error(1)
}

func (m *MockEmbeddingRunService) List(ctx context.Context, query *embeddings.RunQuery) ([]*embeddings.RunMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*embeddings.RunMeta), args.Error(1)
}

func (m *MockEmbeddingRunService) GetByID(ctx context.Context, runID string) (*embeddings.RunMeta, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*embeddings.RunMeta), args.Error(1)
}

func (m *MockEmbeddingRunService) DeleteByID(ctx context.Context, runID string) error {
	args := m.Called(ctx, runID)
	return args.Error(0)
}

// MockEvaluationService is a mock implementation of EvaluationService
type MockEvaluationService struct {
	mock.Mock
}

func (m *MockEvaluationService) EvaluateAUC(ctx context.Context, params evaluation.AUCParams) (*evaluation.Result, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evaluation.Result), args.Error(1)
}

func (m *MockEvaluationService) EvaluatePrecisionAtK(ctx context.Context, params evaluation.PrecisionParams) (*evaluation.Result, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evaluation.Result), args.Error(1)
}

func (m *MockEvaluationService) List(ctx context.Context, query *evaluation.ResultQuery) ([]*evaluation.Result, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evaluation.Result), args.Error(1)
}
