package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/infrastructure/indexstore"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/google/uuid"
)

// embeddingRunService implements the EmbeddingRunService interface for computing embedding runs
type embeddingRunService struct {
	datasetService datasets.DatasetService
	runRepo        embeddings.EmbeddingRunRepository
	newEmbedder    embeddings.EmbedderFactory
	indexDir       string
	logger         logger.Logger
}

// NewEmbeddingRunService creates a new instance of EmbeddingRunService
func NewEmbeddingRunService(
	datasetService datasets.DatasetService,
	runRepo embeddings.EmbeddingRunRepository,
	newEmbedder embeddings.EmbedderFactory,
	indexDir string,
	logger logger.Logger,
) (embeddings.EmbeddingRunService, error) {
	if indexDir == "" {
		return nil, fmt.Errorf("index directory cannot be empty")
	}

	return &embeddingRunService{
		datasetService: datasetService,
		runRepo:        runRepo,
		newEmbedder:    newEmbedder,
		indexDir:       indexDir,
		logger:         logger,
	}, nil
}

// Run fits the named model on a stored dataset, writes the resulting index
// file and persists run metadata.
func (s *embeddingRunService) Run(ctx context.Context, datasetID, model string, dimensions int, seed int64) (*embeddings.RunMeta, error) {
	g, _, err := s.datasetService.LoadGraph(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	embedder, err := s.newEmbedder(model, dimensions, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	runID := uuid.NewString()
	indexPath := filepath.Join(s.indexDir, runID+".json")

	run := &embeddings.RunMeta{
		ID:              runID,
		DatasetID:       datasetID,
		Model:           model,
		Dimensions:      dimensions,
		Seed:            seed,
		IndexPath:       indexPath,
		DateTimeCreated: time.Now(),
	}

	// Reject invalid parameters before the fit so a doomed run never burns
	// compute or touches the index directory.
	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run parameters: %w", err)
	}

	start := time.Now()
	if err := embedder.Fit(g); err != nil {
		return nil, fmt.Errorf("failed to fit %s model: %w", model, err)
	}
	elapsed := time.Since(start)

	index := &indexstore.EmbeddingIndex{
		Model:           embedder.Name(),
		Dimensions:      embedder.Dimension(),
		LeftCount:       g.LeftCount(),
		RightCount:      g.RightCount(),
		BuildDurationMs: elapsed.Milliseconds(),
		CreatedAt:       time.Now(),
		Vectors:         embedder.Embedding(),
	}
	if err := indexstore.Save(index, indexPath); err != nil {
		return nil, fmt.Errorf("failed to save embedding index: %w", err)
	}

	run.BuildDurationMs = elapsed.Milliseconds()

	if err := s.runRepo.Create(ctx, run); err != nil {
		// An unpersisted run is unreachable, so its index file is garbage.
		if removeErr := os.Remove(indexPath); removeErr != nil && !os.IsNotExist(removeErr) {
			s.logger.Error("failed to remove orphaned index file ", indexPath, ": ", removeErr)
		}
		return nil, fmt.Errorf("failed to save run metadata: %w", err)
	}

	s.logger.Info("embedding run completed",
		" run_id ", runID,
		" model ", model,
		" dimensions ", dimensions,
		" duration_ms ", elapsed.Milliseconds())

	return run, nil
}

// List retrieves run metadata considering a query filter
func (s *embeddingRunService) List(ctx context.Context, query *embeddings.RunQuery) ([]*embeddings.RunMeta, error) {
	runs, err := s.runRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return runs, nil
}

// GetByID retrieves run metadata by ID
func (s *embeddingRunService) GetByID(ctx context.Context, runID string) (*embeddings.RunMeta, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return run, nil
}

// DeleteByID deletes a run and its index file by ID
func (s *embeddingRunService) DeleteByID(ctx context.Context, runID string) error {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.runRepo.DeleteByID(ctx, runID); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := os.Remove(run.IndexPath); err != nil && !os.IsNotExist(err) {
		s.logger.Error("failed to remove index file ", run.IndexPath, ": ", err)
	}

	return nil
}
