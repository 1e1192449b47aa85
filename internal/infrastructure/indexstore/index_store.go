// Package indexstore persists embedding matrices as versioned JSON index
// files on disk.
package indexstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CurrentIndexVersion is the format version written by Save and required by Load.
const CurrentIndexVersion = 1

// EmbeddingIndex holds the embeddings of every node of a graph together with
// the metadata needed to interpret them.
type EmbeddingIndex struct {
	// Version is the format version for compatibility checking.
	Version int `json:"version"`

	Model           string    `json:"model"`
	Dimensions      int       `json:"dimensions"`
	LeftCount       int       `json:"left_count"`
	RightCount      int       `json:"right_count"`
	BuildDurationMs int64     `json:"build_duration_ms"`
	CreatedAt       time.Time `json:"created_at"`

	// Vectors is the embedding matrix, one row per node ID.
	Vectors [][]float32 `json:"vectors"`
}

// Save writes the index to path, creating parent directories as needed.
func Save(index *EmbeddingIndex, path string) error {
	if index == nil {
		return fmt.Errorf("index cannot be nil")
	}
	index.Version = CurrentIndexVersion

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}
	return nil
}

// Load reads an index file and checks its format version.
func Load(path string) (*EmbeddingIndex, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}

	var index EmbeddingIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode index file: %w", err)
	}

	if index.Version != CurrentIndexVersion {
		return nil, fmt.Errorf("unsupported index version %d, expected %d", index.Version, CurrentIndexVersion)
	}
	return &index, nil
}
