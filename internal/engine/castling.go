package engine

import "github.com/lgbarn/chess-board-go/internal/chess"

const (
	queensideRookFile = 0
	kingsideRookFile  = chess.BoardSize - 1
)

// handleSpecialMoves performs the side effects of a move that happen before
// the moving piece itself is relocated: the rook hop of a castling move, the
// removal of a pawn taken en passant, and the castling / en passant
// bookkeeping.
func handleSpecialMoves(pos *chess.Position, piece chess.Piece, from, to chess.Square) {
	if piece.Is(chess.King) && abs(to.File-from.File) == 2 {
		applyCastleRook(pos, from, to)
	}

	if piece.Is(chess.Pawn) && to.File != from.File && pos.Board.Get(to).IsEmpty() {
		// Diagonal step onto an empty square: the captured pawn sits
		// beside the mover's start square.
		pos.Board.Clear(chess.Sq(to.File, from.Rank))
	}

	updateCastlingRights(pos, piece, from)
	updateEnPassant(pos, piece, from, to)
}

// applyCastleRook moves the corner rook on the king's rank to the square
// the king passes over.
func applyCastleRook(pos *chess.Position, from, to chess.Square) {
	rookFile := queensideRookFile
	if to.File > from.File {
		rookFile = kingsideRookFile
	}
	rookFrom := chess.Sq(rookFile, from.Rank)
	rookTo := chess.Sq((from.File+to.File)/2, from.Rank)

	rook := pos.Board.Get(rookFrom)
	pos.Board.Clear(rookFrom)
	if !rook.IsEmpty() {
		pos.Board.Set(rookTo, rook)
	}
}

// updateCastlingRights removes castling rights when a king or rook moves.
func updateCastlingRights(pos *chess.Position, piece chess.Piece, from chess.Square) {
	rights := pos.Castling.For(piece.Colour)
	switch {
	case piece.Is(chess.King):
		rights.Kingside = false
		rights.Queenside = false
	case piece.Is(chess.Rook) && from.File == queensideRookFile:
		rights.Queenside = false
	case piece.Is(chess.Rook) && from.File == kingsideRookFile:
		rights.Kingside = false
	}
}

// updateEnPassant sets the target to the passed-over square after a double
// pawn step and clears it after anything else.
func updateEnPassant(pos *chess.Position, piece chess.Piece, from, to chess.Square) {
	if piece.Is(chess.Pawn) && abs(to.Rank-from.Rank) == 2 {
		pos.SetEnPassant(chess.Sq(to.File, (from.Rank+to.Rank)/2))
		return
	}
	pos.ClearEnPassant()
}
