package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple boards or users can
// share one cache directory without key collisions.
//
// Example usage:
//
//	// Keys scoped to a single board file
//	boardKeyer := NewScopedKeyer(NewDefaultKeyer(), "board:roadmap:")
//
//	// Unscoped keys shared across boards
//	globalKeyer := NewDefaultKeyer()
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

// ExportKey generates a prefixed key for a rendered export.
func (k *ScopedKeyer) ExportKey(dot string, format string) string {
	return k.prefix + k.inner.ExportKey(dot, format)
}

// BoardKey generates a prefixed key for a parsed board definition.
func (k *ScopedKeyer) BoardKey(path string, contents []byte) string {
	return k.prefix + k.inner.BoardKey(path, contents)
}
