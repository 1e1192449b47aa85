package embeddings

import (
	"fmt"
)

// EdgeOperator combines two node embeddings into one edge embedding.
type EdgeOperator string

// Edge operator constants
const (
	OperatorConcat   EdgeOperator = "concat"
	OperatorHadamard EdgeOperator = "hadamard"
	OperatorAverage  EdgeOperator = "average"
)

// EdgeEmbedding combines the embeddings of the two endpoints of an edge using
// the given operator. The input vectors must have equal length.
func EdgeEmbedding(operator EdgeOperator, u, v []float32) ([]float32, error) {
	if len(u) != len(v) {
		return nil, fmt.Errorf("endpoint embeddings differ in length: %d vs %d", len(u), len(v))
	}

	switch operator {
	case OperatorConcat:
		out := make([]float32, 0, len(u)+len(v))
		out = append(out, u...)
		out = append(out, v...)
		return out, nil

	case OperatorHadamard:
		out := make([]float32, len(u))
		for i := range u {
			out[i] = u[i] * v[i]
		}
		return out, nil

	case OperatorAverage:
		out := make([]float32, len(u))
		for i := range u {
			out[i] = (u[i] + v[i]) / 2
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown edge operator: %s", operator)
	}
}

// ParseEdgeOperator converts a string into an EdgeOperator.
func ParseEdgeOperator(s string) (EdgeOperator, error) {
	switch EdgeOperator(s) {
	case OperatorConcat, OperatorHadamard, OperatorAverage:
		return EdgeOperator(s), nil
	default:
		return "", fmt.Errorf("unknown edge operator: %s", s)
	}
}
