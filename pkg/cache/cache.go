// Package cache stores computed layouts and rendered artifacts.
//
// Three backends share the [Cache] interface:
//
//   - [NullCache] never stores anything (caching disabled)
//   - [FileCache] keeps entries as sharded JSON files for the CLI
//   - [RedisCache] shares entries between server instances
//
// Keys are produced by a [Keyer] so that every input that changes the
// output also changes the key. [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLs per entry kind.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 24 * time.Hour
)

// LayoutKeyOpts holds every layout parameter that affects tile geometry
// or colour.
type LayoutKeyOpts struct {
	Width      float64 `json:"w"`
	Height     float64 `json:"h"`
	MaxDisplay int     `json:"max"`
	Mode       string  `json:"mode"`
	Inset      float64 `json:"inset"`
}

// ArtifactKeyOpts holds every render parameter that affects output bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Scale  float64 `json:"scale"`
	Links  bool    `json:"links"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys a layout by the hash of its items and the layout options.
	LayoutKey(itemsHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys a rendered artifact by the hash of its layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(itemsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", itemsHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
