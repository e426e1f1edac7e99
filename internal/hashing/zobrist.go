package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-board-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5eed

var (
	pieceKeys    [2][chess.NumKinds][chess.BoardSize][chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: not used for security
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for f := range pieceKeys[c][k] {
				for rank := range pieceKeys[c][k][f] {
					pieceKeys[c][k][f][rank] = r.Uint64()
				}
			}
		}
	}
	blackToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
}

// GenerateZobristHash hashes everything that decides how a position can
// continue: pieces, side to move, castling rights and the en passant file.
// Move count and history are not included.
func GenerateZobristHash(pos *chess.Position) uint64 {
	var hash uint64
	for f := 0; f < chess.BoardSize; f++ {
		for r := 0; r < chess.BoardSize; r++ {
			p := pos.Board.Get(chess.Sq(f, r))
			if !p.IsEmpty() {
				hash ^= pieceKeys[p.Colour][p.Kind][f][r]
			}
		}
	}

	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}
	for i, right := range []bool{
		pos.Castling.White.Kingside, pos.Castling.White.Queenside,
		pos.Castling.Black.Kingside, pos.Castling.Black.Queenside,
	} {
		if right {
			hash ^= castlingKeys[i]
		}
	}
	if pos.EnPassant && pos.EPSquare.InBounds() {
		hash ^= epFileKeys[pos.EPSquare.File]
	}
	return hash
}

// WeakHash is a cheap checksum of the piece layout alone, used to confirm
// a Zobrist match.
func WeakHash(board *chess.Board) uint32 {
	var sum uint32
	for f := 0; f < chess.BoardSize; f++ {
		for r := 0; r < chess.BoardSize; r++ {
			p := board.Get(chess.Sq(f, r))
			if p.IsEmpty() {
				continue
			}
			sq := uint32(f*chess.BoardSize + r + 1)
			sum += sq * (uint32(p.Kind) + 7*uint32(p.Colour))
		}
	}
	return sum
}
