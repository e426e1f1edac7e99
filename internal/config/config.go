// Package config provides configuration for the chess board tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-board-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// 0=nothing, 1=summary lines, 2=running commentary per move
	Verbosity int

	// StartFEN, when set, replaces the standard starting position.
	StartFEN string

	// LoadFile is a saved game to resume instead of starting fresh.
	LoadFile string

	// SaveFile is written after a replay run finishes (empty = don't save).
	SaveFile string

	Output OutputConfig
	Replay ReplayConfig

	// Streams
	Input      io.Reader // Interactive commands
	OutputFile io.Writer // Boards, prompts and reports
	LogFile    io.Writer // Diagnostics
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Replay:     *NewReplayConfig(),
		Input:      os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case c.Verbosity < 0:
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	case c.Replay.Workers < 1:
		return fmt.Errorf("workers %d: %w", c.Replay.Workers, errors.ErrInvalidConfig)
	case c.Replay.BufferSize < 1:
		return fmt.Errorf("buffer size %d: %w", c.Replay.BufferSize, errors.ErrInvalidConfig)
	case c.SaveFile != "" && len(c.Replay.Scripts) > 1:
		return fmt.Errorf("cannot save one game from %d scripts: %w", len(c.Replay.Scripts), errors.ErrInvalidConfig)
	case c.LoadFile != "" && c.StartFEN != "":
		return fmt.Errorf("both a saved game and a FEN start position given: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
