package app

import (
	"context"
	"fmt"
	"time"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/graph"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/google/uuid"
)

// datasetService implements the DatasetService interface for fetching and managing datasets
type datasetService struct {
	connector datasets.DatasetConnector
	repo      datasets.DatasetRepository
	logger    logger.Logger
}

// NewDatasetService creates a new instance of DatasetService
func NewDatasetService(
	connector datasets.DatasetConnector,
	repo datasets.DatasetRepository,
	logger logger.Logger,
) (datasets.DatasetService, error) {
	return &datasetService{
		connector: connector,
		repo:      repo,
		logger:    logger,
	}, nil
}

// Fetch downloads the dataset archive, builds the interaction graph and persists
// the dataset metadata.
func (s *datasetService) Fetch(ctx context.Context, name, sourceURL string, minScore float64) (*datasets.DatasetMeta, error) {
	fetched, err := s.connector.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}

	g, err := s.connector.BuildGraph(fetched.RatingsPath, minScore)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}

	meta := &datasets.DatasetMeta{
		ID:              uuid.NewString(),
		Name:            name,
		SourceURL:       sourceURL,
		LocalPath:       fetched.RatingsPath,
		MinScore:        minScore,
		ArchiveSize:     fetched.ArchiveSize,
		ArchiveChecksum: fetched.ArchiveChecksum,
		LeftCount:       g.LeftCount(),
		RightCount:      g.RightCount(),
		EdgeCount:       g.EdgeCount(),
		DateTimeCreated: time.Now(),
	}

	if err := s.repo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to save dataset metadata for '%s': %w", name, err)
	}

	s.logger.Info("dataset fetched",
		" name ", name,
		" users ", meta.LeftCount,
		" items ", meta.RightCount,
		" edges ", meta.EdgeCount)

	return meta, nil
}

// LoadGraph rebuilds the bipartite graph of a stored dataset from its cached ratings file.
func (s *datasetService) LoadGraph(ctx context.Context, datasetID string) (*graph.Bipartite, *datasets.DatasetMeta, error) {
	meta, err := s.repo.GetByID(ctx, datasetID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	g, err := s.connector.BuildGraph(meta.LocalPath, meta.MinScore)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to rebuild graph for dataset %s: %w", datasetID, err)
	}

	return g, meta, nil
}

// List retrieves all datasets' metadata considering a query filter
func (s *datasetService) List(ctx context.Context, query *datasets.DatasetQuery) ([]*datasets.DatasetMeta, error) {
	metas, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return metas, nil
}

// GetByID retrieves a dataset's metadata by ID
func (s *datasetService) GetByID(ctx context.Context, datasetID string) (*datasets.DatasetMeta, error) {
	meta, err := s.repo.GetByID(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return meta, nil
}

// DeleteByID deletes a dataset's metadata by ID. Cached files are kept so a
// re-fetch does not re-download the archive.
func (s *datasetService) DeleteByID(ctx context.Context, datasetID string) error {
	if _, err := s.repo.GetByID(ctx, datasetID); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.repo.DeleteByID(ctx, datasetID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
