// Package cache provides pluggable caching for solver runs and rendered
// artifacts. Backends include a file-based cache for CLI usage, a Redis
// cache for shared deployments, and a null cache for disabling caching.
package cache

import (
	"context"
	"time"
)

// TTL policies per cache layer.
const (
	// TTLSolution is how long solver results are cached. Solutions are
	// deterministic for a given instance and options, so this is generous.
	TTLSolution = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered artifacts (SVG, PNG, DOT) are cached.
	TTLArtifact = 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value indicates a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// SolveKeyOpts captures every solver option that affects the result.
// Two runs with the same instance and the same SolveKeyOpts produce
// identical tours, so they may share a cache entry.
type SolveKeyOpts struct {
	Schedule      string  `json:"schedule"`
	Move          string  `json:"move"`
	InitialTemp   float64 `json:"initial_temp"`
	Cooling       float64 `json:"cooling"`
	MinTemp       float64 `json:"min_temp"`
	MaxIterations int     `json:"max_iterations"`
	StallLimit    int     `json:"stall_limit"`
	Seed          uint64  `json:"seed"`
}

// ArtifactKeyOpts captures rendering options that affect artifact bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Theme  string `json:"theme"`
}

// Keyer generates cache keys for the pipeline stages.
// Keys must be deterministic: the same inputs always produce the same key.
type Keyer interface {
	// SolveKey generates a key for a solver result, derived from the
	// instance content hash and the full solver configuration.
	SolveKey(instanceHash string, opts SolveKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from
	// the solution content hash and the render configuration.
	ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
// Keys embed a stage prefix and a SHA-256 hash of all inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SolveKey generates a key for a solver result.
func (k *DefaultKeyer) SolveKey(instanceHash string, opts SolveKeyOpts) string {
	return hashKey("solve", instanceHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", solutionHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
