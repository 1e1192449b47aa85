// Package datasets defines the dataset metadata entity and the contracts for
// acquiring rating datasets and turning them into bipartite graphs.
package datasets
