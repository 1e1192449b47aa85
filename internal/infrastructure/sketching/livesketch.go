package sketching

import (
	"encoding/binary"
	"fmt"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/graph"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/spaolacci/murmur3"
)

// signatureBits caps each MinHash value so it stays exactly representable in a
// float32 mantissa. Component equality between two signatures must survive the
// round trip through the embedding matrix.
const signatureBits = 24

const signatureMask = 1<<signatureBits - 1

// liveSketch computes one MinHash signature per node over the node's neighbor
// set. The expected share of equal components between two signatures is the
// Jaccard similarity of the corresponding neighborhoods, so signatures act as
// compact embeddings comparable with the hamming measure.
type liveSketch struct {
	dimensions int
	seed       int64
	embedding  [][]float32
	logger     logger.Logger
}

// NewLiveSketch creates a LiveSketch embedder with the given signature length.
func NewLiveSketch(dimensions int, seed int64, logger logger.Logger) (embeddings.Embedder, error) {
	if dimensions < 1 {
		return nil, fmt.Errorf("dimensions must be positive, got %d", dimensions)
	}

	return &liveSketch{
		dimensions: dimensions,
		seed:       seed,
		logger:     logger,
	}, nil
}

// Name returns the model identifier.
func (s *liveSketch) Name() string {
	return embeddings.ModelLiveSketch
}

// Dimension returns the signature length.
func (s *liveSketch) Dimension() int {
	return s.dimensions
}

// Fit computes the MinHash signature of every node's neighbor set.
func (s *liveSketch) Fit(g *graph.Bipartite) error {
	if g == nil {
		return fmt.Errorf("graph cannot be nil")
	}

	embedding := make([][]float32, g.NodeCount())
	for node := 0; node < g.NodeCount(); node++ {
		embedding[node] = s.signature(g.Neighbors(node))
	}

	s.embedding = embedding
	s.logger.Info("LiveSketch fitted on ", g.NodeCount(), " nodes with ", s.dimensions, " hash permutations")
	return nil
}

// Embedding returns the signature matrix computed by the last Fit call.
func (s *liveSketch) Embedding() [][]float32 {
	return s.embedding
}

// signature computes the MinHash signature of a neighbor set. Isolated nodes
// get the all-sentinel signature (every component at the mask maximum).
func (s *liveSketch) signature(neighbors []int) []float32 {
	signature := make([]float32, s.dimensions)
	for i := range signature {
		signature[i] = float32(signatureMask)
	}

	var buf [8]byte
	for _, neighbor := range neighbors {
		binary.LittleEndian.PutUint64(buf[:], uint64(neighbor))
		for i := 0; i < s.dimensions; i++ {
			h := murmur3.Sum64WithSeed(buf[:], permutationSeed(s.seed, i)) & signatureMask
			if v := float32(h); v < signature[i] {
				signature[i] = v
			}
		}
	}
	return signature
}

// permutationSeed derives the murmur3 seed of the i-th hash permutation.
func permutationSeed(seed int64, i int) uint32 {
	return uint32(seed) ^ uint32(i)*0x9e3779b9
}
