// Package engine applies and takes back moves on a chess.Position.
//
// The legality check is deliberately thin: a move is accepted when the
// source square holds a piece of the side to move and both squares are on
// the board. Movement shapes, paths and king safety are not checked.
package engine

import (
	"github.com/lgbarn/chess-board-go/internal/chess"
	"github.com/lgbarn/chess-board-go/internal/errors"
)

// Apply parses two algebraic labels and applies the move between them.
func Apply(pos *chess.Position, start, end string) error {
	from, err := chess.ParseSquare(start)
	if err != nil {
		return &errors.MoveError{Err: err, From: start, To: end}
	}
	to, err := chess.ParseSquare(end)
	if err != nil {
		return &errors.MoveError{Err: err, From: start, To: end}
	}
	return ApplyMove(pos, from, to)
}

// ApplyMove moves the piece on from to to.
// On error the position is left exactly as it was.
func ApplyMove(pos *chess.Position, from, to chess.Square) error {
	if err := checkMove(pos, from, to); err != nil {
		return &errors.MoveError{Err: err, From: from.String(), To: to.String()}
	}

	piece := pos.Board.Get(from)
	pos.History.Push(pos.Snapshot())

	handleSpecialMoves(pos, piece, from, to)

	pos.Board.Set(to, piece)
	pos.Board.Clear(from)
	pos.MoveCount++
	pos.ToMove = pos.ToMove.Opposite()

	return nil
}

// checkMove is the whole legality check: ownership plus bounds.
func checkMove(pos *chess.Position, from, to chess.Square) error {
	if !from.InBounds() {
		return errors.ErrOutOfBounds
	}
	piece := pos.Board.Get(from)
	if piece.IsEmpty() {
		return errors.ErrNoPieceAtSource
	}
	if piece.Colour != pos.ToMove {
		return errors.ErrWrongColorPiece
	}
	if !to.InBounds() {
		return errors.ErrOutOfBounds
	}
	return nil
}

// Undo takes back the most recent move by restoring its snapshot.
func Undo(pos *chess.Position) error {
	snapshot, ok := pos.History.Pop()
	if !ok {
		return errors.ErrNoHistory
	}
	pos.Restore(snapshot)
	pos.MoveCount--
	pos.ToMove = pos.ToMove.Opposite()
	return nil
}
