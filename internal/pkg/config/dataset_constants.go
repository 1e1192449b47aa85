package config

// MovieLensSmallURL is the default ratings archive fetched when no source URL is configured
const MovieLensSmallURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

// DefaultMinScore is the minimum rating for a user-item interaction to become a graph edge
const DefaultMinScore = 3.0

// DefaultCacheDir is the directory datasets are downloaded and extracted into
const DefaultCacheDir = ".livesketch/datasets"

// DefaultIndexDir is the directory embedding index files are written into
const DefaultIndexDir = ".livesketch/indexes"
