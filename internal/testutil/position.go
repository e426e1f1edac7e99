package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-board-go/internal/chess"
)

// PositionOptions makes cmp see inside chess.History and treat a nil
// history the same as an emptied one.
var PositionOptions = cmp.Options{
	cmp.AllowUnexported(chess.History{}),
	cmpopts.EquateEmpty(),
}

// AssertPositionEqual compares two positions field by field, history included.
func AssertPositionEqual(t *testing.T, got, want *chess.Position, msgAndArgs ...interface{}) {
	t.Helper()
	assertDiff(t, cmp.Diff(want, got, PositionOptions), msgAndArgs...)
}

// ClearSquares empties the labelled squares. It calls t.Fatal on a bad label.
func ClearSquares(t *testing.T, pos *chess.Position, labels ...string) {
	t.Helper()
	for _, label := range labels {
		pos.Board.Clear(MustSquare(t, label))
	}
}

// Place puts piece on the labelled square.
func Place(t *testing.T, pos *chess.Position, label string, piece chess.Piece) {
	t.Helper()
	pos.Board.Set(MustSquare(t, label), piece)
}

// MustSquare parses label, failing the test on error.
func MustSquare(t *testing.T, label string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(label)
	if err != nil {
		t.Fatalf("bad square in test: %v", err)
	}
	return sq
}

// PieceAt returns the piece on the labelled square.
func PieceAt(t *testing.T, pos *chess.Position, label string) chess.Piece {
	t.Helper()
	return pos.Board.Get(MustSquare(t, label))
}
