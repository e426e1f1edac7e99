// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-board-go/internal/config"
)

var (
	// Starting position
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard setup")
	loadFile = flag.String("load", "", "Resume the game saved in this file")

	// Replay options
	saveFile   = flag.String("save", "", "Save the game here after replaying a single script")
	numWorkers = flag.Int("j", 1, "Number of scripts to replay in parallel")
	findDups   = flag.Bool("D", false, "Report scripts that end in the same position as an earlier one")
	exactDups  = flag.Bool("exact", false, "With -D, positions must also have the same move count")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Report replay results in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print the board")
	showFEN    = flag.Bool("showfen", false, "Print the FEN string under the board")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet     = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbosity = flag.Int("verbose", 1, "Diagnostic level: 0 none, 1 summary, 2 every move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config, scripts []string) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}

	cfg.StartFEN = *startFEN
	cfg.LoadFile = *loadFile
	cfg.SaveFile = *saveFile

	cfg.Replay.Scripts = scripts
	cfg.Replay.Workers = *numWorkers
	cfg.Replay.FindDuplicates = *findDups
	cfg.Replay.ExactDuplicates = *exactDups

	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowFEN = *showFEN
}
