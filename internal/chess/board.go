package chess

// Board is the 8x8 grid of squares, indexed [file][rank].
// It is a value type: assigning a Board copies every cell.
type Board [BoardSize][BoardSize]Piece

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition clears the board and places the standard 32 pieces.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for file := 0; file < BoardSize; file++ {
		b[file][0] = W(backRank[file])
		b[file][1] = W(Pawn)
		b[file][6] = B(Pawn)
		b[file][7] = B(backRank[file])
	}
}

// Get returns the piece on sq, or Empty if sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.InBounds() {
		return Empty
	}
	return b[sq.File][sq.Rank]
}

// Set places a piece on sq. Squares off the board are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.InBounds() {
		b[sq.File][sq.Rank] = p
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if !b[file][rank].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// SideRights holds the two castling flags for one colour.
type SideRights struct {
	Kingside  bool
	Queenside bool
}

// CastlingRights holds castling availability for both colours.
// Flags only ever go from true to false during a game.
type CastlingRights struct {
	White SideRights
	Black SideRights
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		White: SideRights{Kingside: true, Queenside: true},
		Black: SideRights{Kingside: true, Queenside: true},
	}
}

// For returns a pointer to the rights of the given colour.
func (c *CastlingRights) For(colour Colour) *SideRights {
	if colour == White {
		return &c.White
	}
	return &c.Black
}

// Covers reports whether every flag set in other is also set in c,
// i.e. moving from c to other never regains a right.
func (c CastlingRights) Covers(other CastlingRights) bool {
	covers := func(a, b SideRights) bool {
		return (a.Kingside || !b.Kingside) && (a.Queenside || !b.Queenside)
	}
	return covers(c.White, other.White) && covers(c.Black, other.Black)
}
