package differ

import "time"

// DiffConfig holds configuration for character-level diffing
type DiffConfig struct {
	EnableSemanticCleanup bool
	EnableLineBasedDiff   bool
	Timeout               time.Duration
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		EnableSemanticCleanup: true,
		EnableLineBasedDiff:   false,
		Timeout:               time.Second,
	}
}
