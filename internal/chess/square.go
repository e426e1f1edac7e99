package chess

import (
	"fmt"

	"github.com/lgbarn/chess-board-go/internal/errors"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square addresses a board cell. File 0 is the a-file, rank 0 is rank 1.
type Square struct {
	File int
	Rank int
}

// Sq builds a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// InBounds reports whether the square lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// String returns the algebraic label, e.g. "e4".
// Squares off the board render as "-".
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts an algebraic label such as "E2" or "e2" to a Square.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return Square{}, fmt.Errorf("%q: %w", label, errors.ErrInvalidSquare)
	}
	file := label[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	rank := label[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", label, errors.ErrInvalidSquare)
	}
	return Square{File: int(file - 'a'), Rank: int(rank - '1')}, nil
}

// MustParseSquare is like ParseSquare but panics on a bad label.
// It is meant for constant labels in tables and tests.
func MustParseSquare(label string) Square {
	sq, err := ParseSquare(label)
	if err != nil {
		panic(err)
	}
	return sq
}
