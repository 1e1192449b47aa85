package graph

import (
	"fmt"
	"math/rand"
)

// LabeledEdge is an edge with a binary link-prediction label:
// 1 for an observed edge, 0 for a sampled non-edge.
type LabeledEdge struct {
	Edge
	Label int
}

// Sample holds the outcome of a train/test edge split: the train graph with
// test positives removed, and labeled train/test edge sets with an equal
// number of negative (non-edge) samples each. On near-complete graphs the
// non-edge pool can run dry, in which case NegativeShortfall reports how many
// negatives are missing across both sets.
type Sample struct {
	Train             *Bipartite
	TrainEdges        []LabeledEdge
	TestEdges         []LabeledEdge
	NegativeShortfall int
}

// SplitEdges splits the edges of g into train and test sets for link
// prediction. A testFraction share of edges is held out as test positives,
// but an edge is never removed if either endpoint would become isolated in
// the train graph, so every node stays embeddable. Negative samples are
// cross-partition non-edges of the full graph. The split is deterministic
// for a fixed seed.
func SplitEdges(g *Bipartite, testFraction float64, seed int64) (*Sample, error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, fmt.Errorf("test fraction must be in (0, 1), got %g", testFraction)
	}
	if g.EdgeCount() == 0 {
		return nil, fmt.Errorf("cannot split a graph with no edges")
	}

	rng := rand.New(rand.NewSource(seed))

	edges := g.Edges()
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	train := g.Clone()
	target := int(float64(len(edges)) * testFraction)
	if target == 0 {
		target = 1
	}

	var testPositives []Edge
	for _, e := range edges {
		if len(testPositives) == target {
			break
		}
		if train.Degree(e.U) <= 1 || train.Degree(e.V) <= 1 {
			continue
		}
		if err := train.RemoveEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("failed to remove test edge: %w", err)
		}
		testPositives = append(testPositives, e)
	}
	if len(testPositives) == 0 {
		return nil, fmt.Errorf("no removable edges: every edge endpoint has degree 1")
	}

	trainPositives := train.Edges()

	sample := &Sample{
		Train:      train,
		TrainEdges: label(trainPositives, 1),
		TestEdges:  label(testPositives, 1),
	}
	trainNegatives := sampleNegatives(g, len(trainPositives), rng)
	testNegatives := sampleNegatives(g, len(testPositives), rng)
	sample.TrainEdges = append(sample.TrainEdges, label(trainNegatives, 0)...)
	sample.TestEdges = append(sample.TestEdges, label(testNegatives, 0)...)
	sample.NegativeShortfall = (len(trainPositives) - len(trainNegatives)) + (len(testPositives) - len(testNegatives))

	return sample, nil
}

// sampleNegatives draws n distinct cross-partition pairs that are not edges
// of the full graph.
func sampleNegatives(g *Bipartite, n int, rng *rand.Rand) []Edge {
	seen := make(map[Edge]struct{}, n)
	negatives := make([]Edge, 0, n)

	// Rejection sampling stalls on near-complete graphs; cap the attempts and
	// return fewer negatives in that degenerate case.
	attempts := 0
	maxAttempts := 100 * (n + 1)

	for len(negatives) < n && attempts < maxAttempts {
		attempts++
		u := rng.Intn(g.LeftCount())
		v := g.LeftCount() + rng.Intn(g.RightCount())
		e := Edge{U: u, V: v}
		if _, ok := seen[e]; ok {
			continue
		}
		if g.HasEdge(u, v) {
			continue
		}
		seen[e] = struct{}{}
		negatives = append(negatives, e)
	}
	return negatives
}

func label(edges []Edge, value int) []LabeledEdge {
	labeled := make([]LabeledEdge, len(edges))
	for i, e := range edges {
		labeled[i] = LabeledEdge{Edge: e, Label: value}
	}
	return labeled
}
