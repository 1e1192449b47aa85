package graph

import (
	"fmt"
	"sort"
	"sync"
)

// Edge is an undirected edge between a left-partition node U and a
// right-partition node V. Node IDs are contiguous integers with the right
// partition offset by the left partition size.
type Edge struct {
	U int
	V int
}

// Bipartite is a thread-safe undirected bipartite graph. The left partition
// holds IDs [0, LeftCount) and the right partition [LeftCount, NodeCount).
type Bipartite struct {
	mu        sync.RWMutex
	leftCount int
	adjacency []map[int]struct{}
	edgeCount int
}

// NewBipartite creates an empty bipartite graph with the given partition sizes.
func NewBipartite(leftCount, rightCount int) (*Bipartite, error) {
	if leftCount <= 0 || rightCount <= 0 {
		return nil, fmt.Errorf("partition sizes must be positive, got left=%d right=%d", leftCount, rightCount)
	}

	return &Bipartite{
		leftCount: leftCount,
		adjacency: make([]map[int]struct{}, leftCount+rightCount),
	}, nil
}

// LeftCount returns the number of nodes in the left partition.
func (g *Bipartite) LeftCount() int {
	return g.leftCount
}

// RightCount returns the number of nodes in the right partition.
func (g *Bipartite) RightCount() int {
	return len(g.adjacency) - g.leftCount
}

// NodeCount returns the total number of nodes across both partitions.
func (g *Bipartite) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of edges.
func (g *Bipartite) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// normalize orders an endpoint pair as (left, right) and validates partitions.
func (g *Bipartite) normalize(u, v int) (int, int, error) {
	if u > v {
		u, v = v, u
	}
	if u < 0 || v >= len(g.adjacency) {
		return 0, 0, fmt.Errorf("node out of range: (%d, %d) with %d nodes", u, v, len(g.adjacency))
	}
	if u >= g.leftCount || v < g.leftCount {
		return 0, 0, fmt.Errorf("edge (%d, %d) must connect the two partitions (left size %d)", u, v, g.leftCount)
	}
	return u, v, nil
}

// AddEdge adds an undirected edge between a left and a right node.
// Adding an existing edge is a no-op.
func (g *Bipartite) AddEdge(u, v int) error {
	u, v, err := g.normalize(u, v)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.adjacency[u] == nil {
		g.adjacency[u] = make(map[int]struct{})
	}
	if _, ok := g.adjacency[u][v]; ok {
		return nil
	}
	if g.adjacency[v] == nil {
		g.adjacency[v] = make(map[int]struct{})
	}

	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++
	return nil
}

// RemoveEdge removes an edge. Removing a missing edge is an error.
func (g *Bipartite) RemoveEdge(u, v int) error {
	u, v, err := g.normalize(u, v)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return fmt.Errorf("edge (%d, %d) does not exist", u, v)
	}

	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--
	return nil
}

// HasEdge reports whether an edge exists between the two nodes.
func (g *Bipartite) HasEdge(u, v int) bool {
	u, v, err := g.normalize(u, v)
	if err != nil {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]
	return ok
}

// Degree returns the number of neighbors of a node.
func (g *Bipartite) Degree(n int) int {
	if n < 0 || n >= len(g.adjacency) {
		return 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacency[n])
}

// Neighbors returns the sorted neighbor IDs of a node.
func (g *Bipartite) Neighbors(n int) []int {
	if n < 0 || n >= len(g.adjacency) {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors := make([]int, 0, len(g.adjacency[n]))
	for v := range g.adjacency[n] {
		neighbors = append(neighbors, v)
	}
	sort.Ints(neighbors)
	return neighbors
}

// Edges returns all edges ordered by (U, V).
func (g *Bipartite) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for u := 0; u < g.leftCount; u++ {
		for v := range g.adjacency[u] {
			edges = append(edges, Edge{U: u, V: v})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// Clone returns a deep copy of the graph.
func (g *Bipartite) Clone() *Bipartite {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Bipartite{
		leftCount: g.leftCount,
		adjacency: make([]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for n, neighbors := range g.adjacency {
		if neighbors == nil {
			continue
		}
		clone.adjacency[n] = make(map[int]struct{}, len(neighbors))
		for v := range neighbors {
			clone.adjacency[n][v] = struct{}{}
		}
	}
	return clone
}
