package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-board-go/internal/config"
	"github.com/lgbarn/chess-board-go/internal/errors"
	"github.com/lgbarn/chess-board-go/internal/game"
	"github.com/lgbarn/chess-board-go/internal/output"
)

// command is one parsed line of interactive input.
type command struct {
	name string // move, undo, save, load, fen, exit; empty for a blank line
	args []string
}

// argCounts is the number of arguments each command takes.
var argCounts = map[string]int{
	"move": 2,
	"undo": 0,
	"save": 1,
	"load": 1,
	"fen":  0,
	"exit": 0,
}

// parseCommand splits a line into a command. A bare pair of tokens is a move.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, nil
	}

	name := strings.ToLower(fields[0])
	want, known := argCounts[name]
	if !known {
		if len(fields) == 2 {
			return command{name: "move", args: fields}, nil
		}
		return command{}, fmt.Errorf("%q: %w", line, errors.ErrInvalidCommand)
	}
	if len(fields)-1 != want {
		return command{}, fmt.Errorf("%s takes %d argument(s), got %d: %w", name, want, len(fields)-1, errors.ErrInvalidCommand)
	}
	return command{name: name, args: fields[1:]}, nil
}

// play runs the interactive loop until exit or end of input.
func play(s *game.Session, cfg *config.Config) {
	in := bufio.NewScanner(cfg.Input)
	out := cfg.OutputFile

	for {
		if cfg.Output.ShowBoard {
			output.WritePosition(out, s.Position(), cfg.Output.ShowFEN) //nolint:errcheck // terminal output
		}
		fmt.Fprintf(out, "%s to move (e.g. e2 e4), or 'exit': ", s.CurrentPlayer())

		if !in.Scan() {
			fmt.Fprintln(out)
			return
		}

		cmd, err := parseCommand(in.Text())
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if cmd.name == "exit" {
			fmt.Fprintln(out, "Game over")
			return
		}
		if err := execute(s, cmd, out); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

// execute runs one non-exit command against the session.
func execute(s *game.Session, cmd command, out io.Writer) error {
	switch cmd.name {
	case "move":
		return s.Apply(cmd.args[0], cmd.args[1])
	case "undo":
		return s.Undo()
	case "save":
		if err := s.Save(cmd.args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved to %s\n", cmd.args[0])
	case "load":
		if err := s.Load(cmd.args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "Loaded %s\n", cmd.args[0])
	case "fen":
		fmt.Fprintln(out, s.FEN())
	}
	return nil
}
