package core

// RuntimeConfig contains configuration passed to puzzles at creation.
// Puzzles stay pure functions of their input; this only tunes how they
// spread independent work.
type RuntimeConfig struct {
	Workers int // Upper bound on goroutines for map-reduce steps (<= 1 means sequential)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Workers: 1,
	}
}
