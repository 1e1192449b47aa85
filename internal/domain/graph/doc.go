// Package graph contains the in-memory bipartite graph primitives the rest of
// the system is built on: the Bipartite type itself and the train/test edge
// sampling used for link-prediction experiments.
package graph
