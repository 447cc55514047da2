// Package cache provides result caching for the adjacency pipeline.
//
// The pipeline is a deterministic pure function of its inputs, so a computed
// neighbor mapping can be cached keyed by content hashes of the topology
// document, the metadata document, the selected object, and the override
// table. A file-backed cache (XDG cache directory) serves CLI runs; the null
// cache disables caching entirely.
package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLNeighbors is how long computed neighbor mappings stay cached. Inputs
// are content-addressed, so entries never go stale; the TTL only bounds disk
// growth.
const TTLNeighbors = 30 * 24 * time.Hour

// Cache is a byte-oriented cache with TTL-based expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// NeighborsKeyOpts are the non-content inputs that shape a pipeline result.
type NeighborsKeyOpts struct {
	Object    string // selected objects entry
	Overrides string // hash of the effective override table
}

// NeighborsKey builds the cache key for a computed neighbor mapping from the
// content hashes of both input documents plus the shaping options.
func NeighborsKey(topoHash, metaHash string, opts NeighborsKeyOpts) string {
	return hashKey("neighbors", topoHash, metaHash, opts.Object, opts.Overrides)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	return fmt.Sprintf("%s:%s", prefix, hashParts(parts...))
}
