// Package replay plays move scripts against a position.
//
// A move script is plain text: whitespace-separated square labels taken in
// consecutive pairs, "e2 e4 e7 e5 ...". A trailing unpaired label is dropped.
package replay

import (
	"bufio"
	"io"
	"os"
	"unicode"

	"github.com/lgbarn/chess-board-go/internal/errors"
)

// Move is one (start, end) pair as written in the script.
type Move struct {
	Start string
	End   string
}

// Script is a tokenized move script.
type Script struct {
	Name    string // File name, for messages
	Moves   []Move
	Dropped string // Unpaired final token, if any
}

// ReadScript tokenizes a move script from r. name is used in errors only.
func ReadScript(r io.Reader, name string) (*Script, error) {
	s := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var pending string
	token := 0
	for scanner.Scan() {
		token++
		text := scanner.Text()
		if hasControl(text) {
			return nil, &errors.ScriptError{Err: errors.ErrMalformedScript, File: name, Token: token, Got: text}
		}
		if pending == "" {
			pending = text
			continue
		}
		s.Moves = append(s.Moves, Move{Start: pending, End: text})
		pending = ""
	}
	if err := scanner.Err(); err != nil {
		return nil, &errors.ScriptError{Err: errors.Join(errors.ErrMalformedScript, err), File: name, Token: token + 1}
	}

	s.Dropped = pending
	return s, nil
}

// LoadScript reads and tokenizes the script file at path.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is chosen by the user
	if err != nil {
		return nil, &errors.ScriptError{Err: errors.Join(errors.ErrMalformedScript, err), File: path}
	}
	defer f.Close()
	return ReadScript(f, path)
}

// hasControl reports whether s contains a control character, which no
// square label can.
func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return true
		}
	}
	return false
}
