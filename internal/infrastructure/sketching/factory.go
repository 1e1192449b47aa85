package sketching

import (
	"fmt"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/pkg/logger"
)

// NewEmbedder constructs the embedding model registered under the given name.
func NewEmbedder(model string, dimensions int, seed int64, logger logger.Logger) (embeddings.Embedder, error) {
	switch model {
	case embeddings.ModelLiveSketch:
		return NewLiveSketch(dimensions, seed, logger)
	case embeddings.ModelRandomProjection:
		return NewRandomProjection(dimensions, seed, logger)
	default:
		return nil, fmt.Errorf("unknown embedding model '%s'; use %s or %s",
			model, embeddings.ModelLiveSketch, embeddings.ModelRandomProjection)
	}
}
