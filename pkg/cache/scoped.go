package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple tools or cache
// format versions can share one backend without colliding.
//
// Example usage:
//
//	// Version the key space so format changes invalidate old entries
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolveKey generates a prefixed key for a solver result.
func (k *ScopedKeyer) SolveKey(instanceHash string, opts SolveKeyOpts) string {
	return k.prefix + k.inner.SolveKey(instanceHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(solutionHash, opts)
}
