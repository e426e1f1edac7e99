package chess

import (
	"testing"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.ToMove != White {
			t.Errorf("ToMove = %v; want white", p.ToMove)
		}
		if p.MoveCount != 0 {
			t.Errorf("MoveCount = %d; want 0", p.MoveCount)
		}
		if p.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if p.Castling != AllCastlingRights() {
			t.Errorf("Castling = %+v; want all rights", p.Castling)
		}
		if p.History.Len() != 0 {
			t.Errorf("History.Len() = %d; want 0", p.History.Len())
		}
	})

	t.Run("thirty two pieces", func(t *testing.T) {
		if got := p.Board.Count(); got != 32 {
			t.Errorf("Board.Count() = %d; want 32", got)
		}
	})

	t.Run("distinct ids", func(t *testing.T) {
		if q := NewPosition(); q.ID == p.ID {
			t.Error("two new positions share an ID")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	var b Board
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		// Empty squares
		{"empty e3", "e3", Empty},
		{"empty d4", "d4", Empty},
		{"empty f5", "f5", Empty},
		{"empty c6", "c6", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Get(MustParseSquare(tt.sq))
			if got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("middle ranks empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 2; rank < 6; rank++ {
				if got := b.Get(Sq(file, rank)); !got.IsEmpty() {
					t.Errorf("Get(%s) = %v; want empty", Sq(file, rank), got)
				}
			}
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var b Board
		sq := MustParseSquare("f6")
		b.Set(sq, B(Knight))
		if got := b.Get(sq); got != B(Knight) {
			t.Errorf("Get(f6) = %v; want black knight", got)
		}
		b.Clear(sq)
		if got := b.Get(sq); !got.IsEmpty() {
			t.Errorf("Get(f6) after Clear = %v; want empty", got)
		}
	})

	t.Run("off-board access", func(t *testing.T) {
		var b Board
		b.SetupInitialPosition()
		b.Set(Sq(8, 0), W(Queen))
		b.Set(Sq(-1, 3), W(Queen))
		if got := b.Get(Sq(0, 8)); !got.IsEmpty() {
			t.Errorf("Get(off board) = %v; want empty", got)
		}
		if got := b.Count(); got != 32 {
			t.Errorf("Count() = %d after off-board Set; want 32", got)
		}
	})
}

func TestBoardIsValue(t *testing.T) {
	var original Board
	original.SetupInitialPosition()

	copied := original
	copied.Clear(MustParseSquare("e2"))

	if original.Get(MustParseSquare("e2")) != W(Pawn) {
		t.Error("modifying a copy changed the original board")
	}
}

func TestCastlingRightsCovers(t *testing.T) {
	all := AllCastlingRights()
	none := CastlingRights{}
	whiteKingGone := all
	whiteKingGone.White.Kingside = false

	tests := []struct {
		name     string
		from, to CastlingRights
		want     bool
	}{
		{"same", all, all, true},
		{"lose one", all, whiteKingGone, true},
		{"lose all", all, none, true},
		{"regain one", whiteKingGone, all, false},
		{"regain from none", none, whiteKingGone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Covers(tt.to); got != tt.want {
				t.Errorf("Covers() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCastlingRightsFor(t *testing.T) {
	rights := AllCastlingRights()
	rights.For(Black).Queenside = false
	if rights.Black.Queenside {
		t.Error("For(Black) did not return a pointer into the rights")
	}
	if !rights.White.Queenside {
		t.Error("For(Black) modified white's rights")
	}
}

func TestHistory(t *testing.T) {
	var h History
	if _, ok := h.Pop(); ok {
		t.Fatal("Pop() on empty history returned ok")
	}

	p := NewPosition()
	first := p.Snapshot()
	p.Board.Clear(MustParseSquare("e2"))
	second := p.Snapshot()

	h.Push(first)
	h.Push(second)
	if h.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", h.Len())
	}

	clone := h.Clone()
	got, _ := h.Pop()
	if got != second {
		t.Error("Pop() did not return the most recent snapshot")
	}
	if clone.Len() != 2 {
		t.Errorf("clone Len() = %d after Pop on original; want 2", clone.Len())
	}

	got, _ = h.Pop()
	if got != first {
		t.Error("second Pop() did not return the first snapshot")
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d; want 0", h.Len())
	}
}

func TestPositionClone(t *testing.T) {
	p := NewPosition()
	p.History.Push(p.Snapshot())

	c := p.Clone()
	c.Board.Clear(MustParseSquare("a1"))
	c.History.Pop()

	if p.Board.Get(MustParseSquare("a1")) != W(Rook) {
		t.Error("clone shares board with original")
	}
	if p.History.Len() != 1 {
		t.Error("clone shares history with original")
	}
}
