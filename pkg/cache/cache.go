// Package cache provides content-addressed caching for rendered board
// exports. Rendering SVG through Graphviz dominates export time, so exports
// are cached keyed by a hash of the DOT source; identical boards render once.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for board artifacts.
type Keyer interface {
	// ExportKey generates a key for a rendered export, derived from the
	// DOT source and output format.
	ExportKey(dot string, format string) string

	// BoardKey generates a key for a parsed board definition.
	BoardKey(path string, contents []byte) string
}

// DefaultKeyer generates content-addressed keys with no namespace prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a keyer without a namespace prefix.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ExportKey generates a key for a rendered export.
func (k *DefaultKeyer) ExportKey(dot string, format string) string {
	return hashKey("export", dot, format)
}

// BoardKey generates a key for a parsed board definition.
func (k *DefaultKeyer) BoardKey(path string, contents []byte) string {
	return hashKey("board", path, Hash(contents))
}
