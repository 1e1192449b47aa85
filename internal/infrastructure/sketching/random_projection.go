package sketching

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/graph"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/spaolacci/murmur3"
)

// randomProjection embeds each node as a signed random projection of its
// adjacency row. The projection matrix is never materialized: the sign of
// entry (neighbor, component) is derived from a murmur3 hash, so memory stays
// linear in the output size.
type randomProjection struct {
	dimensions int
	seed       int64
	embedding  [][]float32
	logger     logger.Logger
}

// NewRandomProjection creates a random-projection embedder with the given
// output dimensionality.
func NewRandomProjection(dimensions int, seed int64, logger logger.Logger) (embeddings.Embedder, error) {
	if dimensions < 1 {
		return nil, fmt.Errorf("dimensions must be positive, got %d", dimensions)
	}

	return &randomProjection{
		dimensions: dimensions,
		seed:       seed,
		logger:     logger,
	}, nil
}

// Name returns the model identifier.
func (r *randomProjection) Name() string {
	return embeddings.ModelRandomProjection
}

// Dimension returns the output dimensionality.
func (r *randomProjection) Dimension() int {
	return r.dimensions
}

// Fit projects every node's adjacency row onto d random sign vectors.
func (r *randomProjection) Fit(g *graph.Bipartite) error {
	if g == nil {
		return fmt.Errorf("graph cannot be nil")
	}

	scale := float32(1 / math.Sqrt(float64(r.dimensions)))

	embedding := make([][]float32, g.NodeCount())
	var buf [8]byte
	for node := 0; node < g.NodeCount(); node++ {
		vector := make([]float32, r.dimensions)
		for _, neighbor := range g.Neighbors(node) {
			binary.LittleEndian.PutUint64(buf[:], uint64(neighbor))
			for i := 0; i < r.dimensions; i++ {
				if murmur3.Sum64WithSeed(buf[:], permutationSeed(r.seed, i))&1 == 0 {
					vector[i] += scale
				} else {
					vector[i] -= scale
				}
			}
		}
		embedding[node] = vector
	}

	r.embedding = embedding
	r.logger.Info("Random projection fitted on ", g.NodeCount(), " nodes into ", r.dimensions, " dimensions")
	return nil
}

// Embedding returns the projection matrix computed by the last Fit call.
func (r *randomProjection) Embedding() [][]float32 {
	return r.embedding
}
