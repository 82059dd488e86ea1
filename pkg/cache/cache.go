// Package cache stores rendered artifacts so unchanged layout documents are
// not re-arranged and re-rendered.
//
// # Implementations
//
//   - [FileCache]: entries as JSON files under a directory, for the CLI
//   - [MemoryCache]: a bounded in-process map, for the HTTP server
//   - [NullCache]: never stores anything, for --no-cache
//
// # Keys
//
// Keys are built by a [Keyer] from the document hash and the render options,
// so two requests share an entry only if they would produce identical output.
// [ScopedKeyer] prefixes keys to keep callers apart in a shared store.
package cache

import (
	"context"
	"time"
)

// Default TTLs.
const (
	// TTLArtifact is how long rendered output stays valid. Rendering is
	// deterministic, so this only bounds disk usage.
	TTLArtifact = 7 * 24 * time.Hour
	// TTLServe is the lifetime of entries created by the HTTP server.
	TTLServe = time.Hour
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources.
	Close() error
}

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Scale   int    `json:"scale,omitempty"`
	Labels  bool   `json:"labels,omitempty"`
	Layouts bool   `json:"layouts,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// SceneKey identifies the arrangement summary of a document.
	SceneKey(docHash string) string
	// ArtifactKey identifies one rendered output of a document.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SceneKey implements Keyer.
func (DefaultKeyer) SceneKey(docHash string) string {
	return "scene:" + docHash
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}
