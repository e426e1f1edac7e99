package config

// OutputConfig holds settings related to what the tools print.
type OutputConfig struct {
	// ShowBoard prints the board before every prompt and after a replay.
	ShowBoard bool

	// ShowFEN prints the FEN string under the board.
	ShowFEN bool

	// JSONFormat prints replay results as JSON instead of text.
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
