// Package errors provides sentinel errors and error types for the chess board.
// It defines the error kinds every operation reports and structured error
// types that preserve context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds of the board engine.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a square label outside a1-h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrNoPieceAtSource indicates a move from an empty square.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrWrongColorPiece indicates a move of the opponent's piece.
	ErrWrongColorPiece = errors.New("piece belongs to the other player")

	// ErrOutOfBounds indicates a square index off the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrNoHistory indicates an undo with no moves to take back.
	ErrNoHistory = errors.New("no moves to undo")

	// ErrPersistenceIO indicates a save or load failed reading or writing storage.
	ErrPersistenceIO = errors.New("persistence I/O error")

	// ErrPersistenceFormat indicates a saved game that cannot be decoded or is inconsistent.
	ErrPersistenceFormat = errors.New("malformed saved game")

	// ErrMalformedScript indicates a move script that cannot be tokenized.
	ErrMalformedScript = errors.New("malformed move script")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidCommand indicates an interactive command that cannot be parsed.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move failure with the move that caused it.
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply in a script (0 if not applicable)
	From string // Source square label as given
	To   string // Destination square label as given
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FileError wraps a save or load failure with the operation and path.
type FileError struct {
	Err  error  // The underlying error
	Op   string // "save" or "load"
	Path string // File path (may be empty for streams)
}

// Error returns a formatted error message.
func (e *FileError) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
	}
	if e.Path != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.Path)
	}
	if e.Err == nil {
		if sb.Len() == 0 {
			return "file error"
		}
		return sb.String()
	}
	if sb.Len() == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", sb.String(), e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// ScriptError represents a move script failure with location context.
type ScriptError struct {
	Err   error  // The underlying error
	File  string // Script file name (if known)
	Token int    // 1-based token index (0 if not applicable)
	Got   string // The offending text (if applicable)
}

// Error returns a formatted error message with location and context.
func (e *ScriptError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Token > 0 {
			loc += fmt.Sprintf(": token %d", e.Token)
		}
		parts = append(parts, loc)
	} else if e.Token > 0 {
		parts = append(parts, fmt.Sprintf("token %d", e.Token))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "script error"
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Join wraps err so that both kind and err match with errors.Is(),
// e.g. a file system error reported as ErrPersistenceIO.
func Join(kind, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
