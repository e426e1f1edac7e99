package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLoadFile resumes a saved game.
func (b *ConfigBuilder) WithLoadFile(path string) *ConfigBuilder {
	b.cfg.LoadFile = path
	return b
}

// WithSaveFile saves the game after a replay.
func (b *ConfigBuilder) WithSaveFile(path string) *ConfigBuilder {
	b.cfg.SaveFile = path
	return b
}

// WithScripts sets the move scripts to replay.
func (b *ConfigBuilder) WithScripts(paths ...string) *ConfigBuilder {
	b.cfg.Replay.Scripts = paths
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithDuplicateDetection marks replays that end in an already seen position.
// With exact set, the move counts must match as well.
func (b *ConfigBuilder) WithDuplicateDetection(enabled, exact bool) *ConfigBuilder {
	b.cfg.Replay.FindDuplicates = enabled
	b.cfg.Replay.ExactDuplicates = exact
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// ShowBoard controls whether boards are printed.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// ShowFEN controls whether FEN strings are printed.
func (b *ConfigBuilder) ShowFEN(show bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = show
	return b
}

// WithInput sets the command input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
