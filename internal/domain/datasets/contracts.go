package datasets

import (
	"context"

	"github.com/georgSquared/livesketch/internal/domain/graph"
)

// DatasetService defines methods for fetching and managing rating datasets.
type DatasetService interface {
	// Fetch downloads the dataset archive, builds the interaction graph and
	// persists the dataset metadata. It returns the new metadata.
	Fetch(ctx context.Context, name, sourceURL string, minScore float64) (*DatasetMeta, error)

	// LoadGraph rebuilds the bipartite graph of a stored dataset from its
	// cached ratings file.
	LoadGraph(ctx context.Context, datasetID string) (*graph.Bipartite, *DatasetMeta, error)

	// List retrieves dataset metadata considering a query filter when set.
	List(ctx context.Context, query *DatasetQuery) ([]*DatasetMeta, error)

	// GetByID retrieves dataset metadata by ID.
	GetByID(ctx context.Context, datasetID string) (*DatasetMeta, error)

	// DeleteByID deletes a dataset's metadata by ID. Cached files are kept.
	DeleteByID(ctx context.Context, datasetID string) error
}

// DatasetRepository defines the persistence operations for dataset metadata
type DatasetRepository interface {
	// Create adds new dataset metadata to the database
	Create(ctx context.Context, dataset *DatasetMeta) error
	// List lists dataset metadata in the database with optional filter
	List(ctx context.Context, query *DatasetQuery) ([]*DatasetMeta, error)
	// GetByID retrieves dataset metadata from the database by ID
	GetByID(ctx context.Context, datasetID string) (*DatasetMeta, error)
	// UpdateByID updates dataset metadata in the database by ID
	UpdateByID(ctx context.Context, dataset *DatasetMeta) error
	// DeleteByID deletes dataset metadata in the database by ID
	DeleteByID(ctx context.Context, datasetID string) error
}

// FetchResult describes a downloaded and extracted dataset archive.
type FetchResult struct {
	// RatingsPath is the path of the extracted ratings file.
	RatingsPath string
	// ArchiveSize is the size of the downloaded archive in bytes.
	ArchiveSize int64
	// ArchiveChecksum is the hex-encoded SHA-256 of the downloaded archive.
	ArchiveChecksum string
}

// DatasetConnector is an interface for downloading rating archives and
// building graphs from the extracted ratings file.
type DatasetConnector interface {
	// Fetch downloads and extracts the archive at sourceURL into the local
	// cache and returns the ratings file path plus archive size and checksum.
	Fetch(ctx context.Context, sourceURL string) (*FetchResult, error)

	// BuildGraph parses a ratings file and builds a bipartite graph with an
	// edge for every rating at or above minScore.
	BuildGraph(ratingsPath string, minScore float64) (*graph.Bipartite, error)
}
