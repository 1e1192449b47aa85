//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/domain/graph"

	"github.com/stretchr/testify/mock"
)

// MockDatasetRepository is a mock implementation of DatasetRepository
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) Create(ctx context.Context, dataset *datasets.DatasetMeta) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *MockDatasetRepository) List(ctx context.Context, query *datasets.DatasetQuery) ([]*datasets.DatasetMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*datasets.DatasetMeta), args.Error(1)
}

func (m *MockDatasetRepository) GetByID(ctx context.Context, datasetID string) (*datasets.DatasetMeta, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.DatasetMeta), args.Error(1)
}

func (m *MockDatasetRepository) UpdateByID(ctx context.Context, dataset *datasets.DatasetMeta) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *MockDatasetRepository) DeleteByID(ctx context.Context, datasetID string) error {
	args := m.Called(ctx, datasetID)
	return args.Error(0)
}

// MockRunRepository is a mock implementation of EmbeddingRunRepository
type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) Create(ctx context.Context, run *embeddings.RunMeta) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepository) List(ctx context.Context, query *embeddings.RunQuery) ([]*embeddings.RunMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*embeddings.RunMeta), args.Error(1)
}

func (m *MockRunRepository) GetByID(ctx context.Context, runID string) (*embeddings.RunMeta, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*embeddings.RunMeta), args.Error(1)
}

func (m *MockRunRepository) DeleteByID(ctx context.Context, runID string) error {
	args := m.Called(ctx, runID)
	return args.Error(0)
}

// MockResultRepository is a mock implementation of ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *evaluation.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) List(ctx context.Context, query *evaluation.ResultQuery) ([]*evaluation.Result, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evaluation.Result), args.Error(1)
}

func (m *MockResultRepository) GetByID(ctx context.Context, resultID string) (*evaluation.Result, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evaluation.Result), args.Error(1)
}

func (m *MockResultRepository) DeleteByID(ctx context.Context, resultID string) error {
	args := m.Called(ctx, resultID)
	return args.Error(0)
}

// MockDatasetConnector is a mock implementation of DatasetConnector
type MockDatasetConnector struct {
	mock.Mock
}

func (m *MockDatasetConnector) Fetch(ctx context.Context, sourceURL string) (*datasets.FetchResult, error) {
	args := m.Called(ctx, sourceURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.FetchResult), args.Error(1)
}

func (m *MockDatasetConnector) BuildGraph(ratingsPath string, minScore float64) (*graph.Bipartite, error) {
	args := m.Called(ratingsPath, minScore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*graph.Bipartite), args.Error(1)
}
