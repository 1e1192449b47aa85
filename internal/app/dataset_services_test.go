//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/graph"
	"github.com/georgSquared/livesketch/internal/pkg/config"
	"github.com/georgSquared/livesketch/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func smallGraph(t *testing.T) *graph.Bipartite {
	t.Helper()

	g, err := graph.NewBipartite(2, 3)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 2}, {0, 3}, {1, 3}, {1, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestDatasetService_Fetch_Success(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	mockConnector := new(MockDatasetConnector)
	mockRepo := new(MockDatasetRepository)

	g := smallGraph(t)
	ratingsPath := "/tmp/livesketch/ml-latest-small/ratings.csv"
	checksum := "9e107d9d372bb6826bd81d3542a419d6e107d9d372bb6826bd81d3542a419d6e"

	mockConnector.On("Fetch", mock.Anything, config.MovieLensSmallURL).Return(&datasets.FetchResult{
		RatingsPath:     ratingsPath,
		ArchiveSize:     978202,
		ArchiveChecksum: checksum,
	}, nil)
	mockConnector.On("BuildGraph", ratingsPath, 3.0).Return(g, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*datasets.DatasetMeta")).Return(nil)

	service, err := NewDatasetService(mockConnector, mockRepo, logger)
	require.NoError(t, err)

	meta, err := service.Fetch(context.Background(), "ml-latest-small", config.MovieLensSmallURL, 3.0)
	require.NoError(t, err)

	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, "ml-latest-small", meta.Name)
	assert.Equal(t, ratingsPath, meta.LocalPath)
	assert.Equal(t, int64(978202), meta.ArchiveSize)
	assert.Equal(t, checksum, meta.ArchiveChecksum)
	assert.Equal(t, 2, meta.LeftCount)
	assert.Equal(t, 3, meta.RightCount)
	assert.Equal(t, 4, meta.EdgeCount)
	mockConnector.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDatasetService_Fetch_ConnectorError(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	mockConnector := new(MockDatasetConnector)
	mockRepo := new(MockDatasetRepository)

	mockConnector.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("download failed"))

	service, err := NewDatasetService(mockConnector, mockRepo, logger)
	require.NoError(t, err)

	_, err = service.Fetch(context.Background(), "ml-latest-small", config.MovieLensSmallURL, 3.0)
	require.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestDatasetService_LoadGraph(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	mockConnector := new(MockDatasetConnector)
	mockRepo := new(MockDatasetRepository)

	g := smallGraph(t)
	meta := &datasets.DatasetMeta{
		ID:        uuid.NewString(),
		Name:      "ml-latest-small",
		LocalPath: "/tmp/livesketch/ml-latest-small/ratings.csv",
		MinScore:  3.0,
	}

	mockRepo.On("GetByID", mock.Anything, meta.ID).Return(meta, nil)
	mockConnector.On("BuildGraph", meta.LocalPath, meta.MinScore).Return(g, nil)

	service, err := NewDatasetService(mockConnector, mockRepo, logger)
	require.NoError(t, err)

	loaded, loadedMeta, err := service.LoadGraph(context.Background(), meta.ID)
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), loaded.EdgeCount())
	assert.Equal(t, meta.ID, loadedMeta.ID)
	mockConnector.AssertExpectations(t)
}

func TestDatasetService_DeleteByID_NotFound(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	mockConnector := new(MockDatasetConnector)
	mockRepo := new(MockDatasetRepository)

	mockRepo.On("GetByID", mock.Anything, "missing-id").Return(nil, errors.New("dataset with ID missing-id not found"))

	service, err := NewDatasetService(mockConnector, mockRepo, logger)
	require.NoError(t, err)

	err = service.DeleteByID(context.Background(), "missing-id")
	require.Error(t, err)
	mockRepo.AssertNotCalled(t, "DeleteByID")
}
