// Package cache stores rendered artifacts and computed layouts so
// repeated invocations on the same graph skip the expensive steps.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return value reports whether
	// the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer derives cache keys for the two cacheable products: computed
// layouts and rendered artifacts.
type Keyer interface {
	// LayoutKey keys a position mapping by graph content and layout name.
	LayoutKey(graphHash, layout string) string

	// ArtifactKey keys a rendered image by graph content and render
	// parameters.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render parameters that distinguish artifacts
// of the same graph. Style is an opaque fingerprint of the drawing
// options so any styling change misses the cache.
type ArtifactKeyOpts struct {
	Layout string
	Format string
	Width  int
	Height int
	Style  string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(graphHash, layout string) string {
	return hashKey("layout", graphHash, layout)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts.Layout, opts.Format, opts.Width, opts.Height, opts.Style)
}
