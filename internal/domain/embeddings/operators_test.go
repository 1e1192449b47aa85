//go:build unit
// +build unit

package embeddings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeEmbedding(t *testing.T) {
	u := []float32{1, 2, 3}
	v := []float32{4, 5, 6}

	tests := []struct {
		name     string
		operator EdgeOperator
		expected []float32
	}{
		{"Concat", OperatorConcat, []float32{1, 2, 3, 4, 5, 6}},
		{"Hadamard", OperatorHadamard, []float32{4, 10, 18}},
		{"Average", OperatorAverage, []float32{2.5, 3.5, 4.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := EdgeEmbedding(tt.operator, u, v)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestEdgeEmbedding_LengthMismatch(t *testing.T) {
	_, err := EdgeEmbedding(OperatorHadamard, []float32{1, 2}, []float32{1, 2, 3})
	require.Error(t, err)
}

func TestEdgeEmbedding_UnknownOperator(t *testing.T) {
	_, err := EdgeEmbedding("subtract", []float32{1}, []float32{2})
	require.Error(t, err)
}

func TestParseEdgeOperator(t *testing.T) {
	for _, valid := range []string{"concat", "hadamard", "average"} {
		op, err := ParseEdgeOperator(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(op))
	}

	_, err := ParseEdgeOperator("subtract")
	require.Error(t, err)
}
