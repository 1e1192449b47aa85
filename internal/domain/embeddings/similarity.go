package embeddings

import (
	"fmt"
	"math"
)

// SimilarityMeasure scores how alike two node embeddings are.
type SimilarityMeasure string

// Similarity measure constants
const (
	SimilarityCosine SimilarityMeasure = "cosine"
	// SimilarityHamming counts equal components. For MinHash signatures this
	// estimates the Jaccard similarity of the underlying neighbor sets.
	SimilarityHamming    SimilarityMeasure = "hamming"
	SimilarityDotProduct SimilarityMeasure = "dot_product"
)

// Similarity computes the given measure over two equal-length vectors.
// Higher values always mean more similar.
func Similarity(measure SimilarityMeasure, u, v []float32) (float64, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("embeddings differ in length: %d vs %d", len(u), len(v))
	}

	switch measure {
	case SimilarityCosine:
		var dot, normU, normV float64
		for i := range u {
			dot += float64(u[i]) * float64(v[i])
			normU += float64(u[i]) * float64(u[i])
			normV += float64(v[i]) * float64(v[i])
		}
		if normU == 0 || normV == 0 {
			return 0, nil
		}
		return dot / (math.Sqrt(normU) * math.Sqrt(normV)), nil

	case SimilarityHamming:
		matches := 0
		for i := range u {
			if u[i] == v[i] {
				matches++
			}
		}
		return float64(matches), nil

	case SimilarityDotProduct:
		var dot float64
		for i := range u {
			dot += float64(u[i]) * float64(v[i])
		}
		return dot, nil

	default:
		return 0, fmt.Errorf("unknown similarity measure: %s", measure)
	}
}

// ParseSimilarityMeasure converts a string into a SimilarityMeasure.
func ParseSimilarityMeasure(s string) (SimilarityMeasure, error) {
	switch SimilarityMeasure(s) {
	case SimilarityCosine, SimilarityHamming, SimilarityDotProduct:
		return SimilarityMeasure(s), nil
	default:
		return "", fmt.Errorf("unknown similarity measure: %s", s)
	}
}
