// Package chess provides core chess types: colours, pieces, squares, the
// board grid and the position that owns them.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the lower-case name of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white" or "black" to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	}
	return Black, false
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // No piece (empty square)
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lower-case name of a piece kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a kind name such as "knight" to a Kind.
// NoKind is never returned with ok set.
func ParseKind(s string) (Kind, bool) {
	for k := Pawn; k < NumKinds; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return NoKind, false
}

// Piece is a coloured piece. The zero value is Empty.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// Empty is the content of a square with no piece on it.
var Empty = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty reports whether p is the empty piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given kind.
func (p Piece) Is(kind Kind) bool {
	return !p.IsEmpty() && p.Kind == kind
}

// Letter returns the display letter: uppercase for white, lowercase for
// black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a readable name such as "white knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
