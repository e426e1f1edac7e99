package config

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// Scripts are the move-script files to replay. Empty means interactive play.
	Scripts []string

	// Workers is the number of scripts replayed at once.
	Workers int

	// BufferSize is the worker pool channel buffer.
	BufferSize int

	// FindDuplicates marks scripts that end in the same position as an
	// earlier script.
	FindDuplicates bool

	// ExactDuplicates also requires the same number of moves played.
	ExactDuplicates bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    1,
		BufferSize: 10,
	}
}
