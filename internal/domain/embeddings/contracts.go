package embeddings

import (
	"context"

	"github.com/georgSquared/livesketch/internal/domain/graph"
)

// Model name constants
const (
	ModelLiveSketch       = "livesketch"
	ModelRandomProjection = "random_projection"
)

// Embedder generates one vector per graph node. Implementations are fitted on
// a graph and then queried for the full embedding matrix, indexed by node ID.
type Embedder interface {
	// Name returns the model identifier, e.g. "livesketch".
	Name() string

	// Fit computes embeddings for every node of the given graph.
	Fit(g *graph.Bipartite) error

	// Embedding returns the embedding matrix computed by the last Fit call,
	// one row per node ID.
	Embedding() [][]float32

	// Dimension returns the dimensionality of the output vectors.
	Dimension() int
}

// EmbedderFactory constructs the embedding model registered under the given name.
type EmbedderFactory func(model string, dimensions int, seed int64) (Embedder, error)

// EmbeddingRunService defines methods for computing and persisting embedding runs.
type EmbeddingRunService interface {
	// Run fits the named model on a stored dataset, writes the resulting index
	// file and persists run metadata. It returns the run metadata.
	Run(ctx context.Context, datasetID, model string, dimensions int, seed int64) (*RunMeta, error)

	// List retrieves run metadata considering a query filter when set.
	List(ctx context.Context, query *RunQuery) ([]*RunMeta, error)

	// GetByID retrieves run metadata by ID.
	GetByID(ctx context.Context, runID string) (*RunMeta, error)

	// DeleteByID deletes a run and its index file by ID.
	DeleteByID(ctx context.Context, runID string) error
}

// EmbeddingRunRepository defines the persistence operations for run metadata
type EmbeddingRunRepository interface {
	// Create adds new run metadata to the database
	Create(ctx context.Context, run *RunMeta) error
	// List lists run metadata in the database with optional filter
	List(ctx context.Context, query *RunQuery) ([]*RunMeta, error)
	// GetByID retrieves run metadata from the database by ID
	GetByID(ctx context.Context, runID string) (*RunMeta, error)
	// DeleteByID deletes run metadata in the database by ID
	DeleteByID(ctx context.Context, runID string) error
}
