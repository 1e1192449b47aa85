// Package embeddings defines the embedding model contract, the edge operators
// and similarity measures used to derive edge-level features from node
// embeddings, and the metadata entities describing embedding runs.
package embeddings
