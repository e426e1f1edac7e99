// Package output formats boards and replay reports for the terminal or as JSON.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/chess-board-go/internal/chess"
	"github.com/lgbarn/chess-board-go/internal/engine"
)

const fileHeader = "  A B C D E F G H"

// WriteBoard prints the board with rank 8 at the top, framed by file
// letters above and below and rank numbers on both sides:
//
//	  A B C D E F G H
//	8 r n b q k b n r 8
//	...
//	1 R N B Q K B N R 1
//	  A B C D E F G H
func WriteBoard(w io.Writer, board *chess.Board) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fileHeader)
	bw.WriteByte('\n')
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		label := byte('1' + rank)
		bw.WriteByte(label)
		for file := 0; file < chess.BoardSize; file++ {
			bw.WriteByte(' ')
			bw.WriteByte(board.Get(chess.Sq(file, rank)).Letter())
		}
		bw.WriteByte(' ')
		bw.WriteByte(label)
		bw.WriteByte('\n')
	}
	bw.WriteString(fileHeader)
	bw.WriteByte('\n')
	return bw.Flush()
}

// WritePosition prints the board and, if withFEN is set, the FEN string
// on the line below it.
func WritePosition(w io.Writer, pos *chess.Position, withFEN bool) error {
	if err := WriteBoard(w, &pos.Board); err != nil {
		return err
	}
	if !withFEN {
		return nil
	}
	_, err := io.WriteString(w, engine.PositionToFEN(pos)+"\n")
	return err
}
