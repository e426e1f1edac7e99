// chess-board tracks a chess position from typed or scripted moves.
//
// With no arguments it runs an interactive game on stdin. Given move-script
// files it replays each one and reports the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-board-go/internal/config"
	"github.com/lgbarn/chess-board-go/internal/game"
	"github.com/lgbarn/chess-board-go/internal/output"
	"github.com/lgbarn/chess-board-go/internal/replay"
	"github.com/lgbarn/chess-board-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-board version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg, flag.Args())

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg))
}

// run dispatches to replay or interactive mode and returns the exit code.
func run(cfg *config.Config) int {
	if len(cfg.Replay.Scripts) > 0 {
		return runReplay(cfg)
	}

	session, err := game.NewSession(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	play(session, cfg)
	return 0
}

// runReplay replays the script files and reports each one. A script whose
// moves fail still counts as replayed; only scripts that could not be read
// or started make the run fail.
func runReplay(cfg *config.Config) int {
	results := replay.RunFiles(cfg.Replay.Scripts, cfg)

	status := 0
	w := output.NewResultWriter(cfg.OutputFile, cfg)
	for i := range results {
		if results[i].Failed() {
			status = 1
		}
		if err := w.WriteResult(&results[i]); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
			return 1
		}
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		return 1
	}

	if cfg.SaveFile != "" && len(results) == 1 && !results[0].Failed() {
		if err := storage.Save(results[0].Position, cfg.SaveFile); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			return 1
		}
		cfg.Logf(1, "saved %s", cfg.SaveFile)
	}

	if cfg.Verbosity > 0 && len(results) > 1 {
		reportStatistics(cfg, results)
	}
	return status
}

// reportStatistics writes a one-line summary of a batch replay.
func reportStatistics(cfg *config.Config, results []replay.Result) {
	var replayed, applied, failed int
	for i := range results {
		if results[i].Failed() {
			continue
		}
		replayed++
		applied += results[i].Applied()
		failed += len(results[i].Failures())
	}
	fmt.Fprintf(cfg.LogFile, "%d of %d scripts replayed, %d moves applied, %d rejected\n",
		replayed, len(results), applied, failed)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-board - track a chess position from typed or scripted moves

Usage: chess-board [options] [script...]

With no scripts, reads commands from stdin:
  e2 e4 | move e2 e4   move a piece
  undo                 take back the last move
  save FILE            save the game
  load FILE            resume a saved game
  fen                  print the position as FEN
  exit                 quit

Options:
`)
	flag.PrintDefaults()
}
