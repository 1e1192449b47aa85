//go:build unit
// +build unit

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestGraph creates a 4x5 bipartite graph where every left node rates
// several right nodes, so a split can always hold edges out.
func buildTestGraph(t *testing.T) *Bipartite {
	t.Helper()

	g, err := NewBipartite(4, 5)
	require.NoError(t, err)

	edges := [][2]int{
		{0, 4}, {0, 5}, {0, 6},
		{1, 4}, {1, 6}, {1, 7},
		{2, 5}, {2, 7}, {2, 8},
		{3, 4}, {3, 8},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestSplitEdges_InvalidFraction(t *testing.T) {
	g := buildTestGraph(t)

	_, err := SplitEdges(g, 0, 42)
	require.Error(t, err)

	_, err = SplitEdges(g, 1, 42)
	require.Error(t, err)
}

func TestSplitEdges_EmptyGraph(t *testing.T) {
	g, err := NewBipartite(2, 2)
	require.NoError(t, err)

	_, err = SplitEdges(g, 0.2, 42)
	require.Error(t, err)
}

func TestSplitEdges_HoldsOutFraction(t *testing.T) {
	g := buildTestGraph(t)

	sample, err := SplitEdges(g, 0.2, 42)
	require.NoError(t, err)

	target := int(float64(g.EdgeCount()) * 0.2)
	testPositives := 0
	for _, e := range sample.TestEdges {
		if e.Label == 1 {
			testPositives++
		}
	}
	assert.Equal(t, target, testPositives)
	assert.Equal(t, g.EdgeCount()-testPositives, sample.Train.EdgeCount())

	// Original graph is untouched
	assert.Equal(t, 11, g.EdgeCount())
}

func TestSplitEdges_NoIsolatedTrainNodes(t *testing.T) {
	g := buildTestGraph(t)

	sample, err := SplitEdges(g, 0.3, 7)
	require.NoError(t, err)

	for n := 0; n < g.NodeCount(); n++ {
		if g.Degree(n) > 0 {
			assert.Greater(t, sample.Train.Degree(n), 0, "node %d became isolated", n)
		}
	}
}

func TestSplitEdges_NegativesAreNonEdges(t *testing.T) {
	g := buildTestGraph(t)

	sample, err := SplitEdges(g, 0.2, 42)
	require.NoError(t, err)

	for _, set := range [][]LabeledEdge{sample.TrainEdges, sample.TestEdges} {
		for _, e := range set {
			if e.Label == 0 {
				assert.False(t, g.HasEdge(e.U, e.V), "negative (%d, %d) is a real edge", e.U, e.V)
			}
		}
	}
}

func TestSplitEdges_Deterministic(t *testing.T) {
	g := buildTestGraph(t)

	first, err := SplitEdges(g, 0.2, 42)
	require.NoError(t, err)

	second, err := SplitEdges(g, 0.2, 42)
	require.NoError(t, err)

	assert.Equal(t, first.TrainEdges, second.TrainEdges)
	assert.Equal(t, first.TestEdges, second.TestEdges)
}

func TestSplitEdges_ReportsNegativeShortfall(t *testing.T) {
	// Complete bipartite graph: no non-edges exist, so negative sampling
	// cannot balance the positives and must report the full deficit
	g, err := NewBipartite(3, 3)
	require.NoError(t, err)
	for u := 0; u < 3; u++ {
		for v := 3; v < 6; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}

	sample, err := SplitEdges(g, 0.2, 42)
	require.NoError(t, err)

	positives := 0
	for _, set := range [][]LabeledEdge{sample.TrainEdges, sample.TestEdges} {
		for _, e := range set {
			if e.Label == 1 {
				positives++
			} else {
				t.Fatalf("complete graph produced negative (%d, %d)", e.U, e.V)
			}
		}
	}
	assert.Equal(t, positives, sample.NegativeShortfall)
}

func TestSplitEdges_FullNegativesHaveNoShortfall(t *testing.T) {
	sample, err := SplitEdges(buildTestGraph(t), 0.2, 42)
	require.NoError(t, err)
	assert.Zero(t, sample.NegativeShortfall)
}

func TestSplitEdges_DegreeOneEdgesKept(t *testing.T) {
	// A perfect matching: removing any edge isolates both endpoints
	g, err := NewBipartite(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))

	_, err = SplitEdges(g, 0.5, 42)
	require.Error(t, err)
}
