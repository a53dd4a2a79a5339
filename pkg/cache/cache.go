// Package cache provides a byte-level cache for rendered artifacts.
//
// Rendering a document through Graphviz is the slowest step in the CLI, so
// renders are cached keyed by a hash of the DOT source and render options.
// The file backend stores entries under a directory with optional TTL
// expiration; the null backend disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey builds the cache key for a rendered artifact from the DOT
// source and the output format. Any change to the document or the render
// options changes the DOT source and therefore the key.
func RenderKey(dot, format string) string {
	return "render:" + format + ":" + Hash([]byte(dot))
}
