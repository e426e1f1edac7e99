package chess

import "github.com/google/uuid"

// Position is the complete state of one game: the board, whose turn it is,
// castling and en passant bookkeeping, the move counter and the undo history.
// A Position has exactly one owner and is mutated in place.
type Position struct {
	// ID identifies the game across save and load.
	ID uuid.UUID

	Board Board

	// Who has the next move.
	ToMove Colour

	// Number of moves applied since the game started (net of undos).
	MoveCount int

	Castling CastlingRights

	// Is an en passant capture possible? If so EPSquare is the square
	// the double-stepping pawn passed over. EPSquare is the zero square
	// whenever EnPassant is false.
	EnPassant bool
	EPSquare  Square

	History History
}

// NewPosition creates a position with the standard starting layout.
func NewPosition() *Position {
	p := &Position{
		ID:       uuid.New(),
		ToMove:   White,
		Castling: AllCastlingRights(),
	}
	p.Board.SetupInitialPosition()
	return p
}

// NewEmptyPosition creates a position with no pieces and no castling rights,
// White to move. Used as the starting point for FEN and fixtures.
func NewEmptyPosition() *Position {
	return &Position{
		ID:     uuid.New(),
		ToMove: White,
	}
}

// SetEnPassant records sq as the en passant target.
func (p *Position) SetEnPassant(sq Square) {
	p.EnPassant = true
	p.EPSquare = sq
}

// ClearEnPassant removes any en passant target.
func (p *Position) ClearEnPassant() {
	p.EnPassant = false
	p.EPSquare = Square{}
}

// Snapshot captures the parts of the position a move can change besides
// the turn and move counter.
func (p *Position) Snapshot() Snapshot {
	return Snapshot{
		Board:     p.Board,
		Castling:  p.Castling,
		EnPassant: p.EnPassant,
		EPSquare:  p.EPSquare,
	}
}

// Restore replaces board, castling and en passant state from s.
func (p *Position) Restore(s Snapshot) {
	p.Board = s.Board
	p.Castling = s.Castling
	p.EnPassant = s.EnPassant
	p.EPSquare = s.EPSquare
}

// Clone returns a deep copy of the position, history included.
func (p *Position) Clone() *Position {
	c := *p
	c.History = p.History.Clone()
	return &c
}
