// Package sketching implements the embedding models: the LiveSketch MinHash
// sketcher and a signed random-projection baseline. Both hash with murmur3 so
// embeddings are fully determined by the configured seed.
package sketching
