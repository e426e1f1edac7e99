// Package storage saves and restores complete games, history included.
//
// A saved game is a single JSON document. Boards are stored rank by rank
// from rank 1, each cell either null or a {"color", "kind"} object.
package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-board-go/internal/chess"
	"github.com/lgbarn/chess-board-go/internal/errors"
)

// FormatVersion is the record version written by Encode.
const FormatVersion = 1

// Record is the on-disk form of a chess.Position.
type Record struct {
	Version        int              `json:"version"`
	ID             string           `json:"id"`
	Board          BoardRecord      `json:"board"`
	MoveCount      int              `json:"move_count"`
	History        []SnapshotRecord `json:"history"`
	CurrentPlayer  string           `json:"current_player"`
	CastlingRights CastlingRecord   `json:"castling_rights"`
	EnPassant      *SquareRecord    `json:"en_passant"`
}

// BoardRecord holds board[rank][file]; a nil cell is an empty square.
type BoardRecord [][]*PieceRecord

// PieceRecord is a coloured piece.
type PieceRecord struct {
	Color string `json:"color"`
	Kind  string `json:"kind"`
}

// SnapshotRecord is one undo entry.
type SnapshotRecord struct {
	Board          BoardRecord    `json:"board"`
	CastlingRights CastlingRecord `json:"castling_rights"`
	EnPassant      *SquareRecord  `json:"en_passant"`
}

// CastlingRecord holds the castling flags per colour.
type CastlingRecord struct {
	White SideRecord `json:"white"`
	Black SideRecord `json:"black"`
}

// SideRecord holds the kingside (K) and queenside (Q) flags.
type SideRecord struct {
	K bool `json:"K"`
	Q bool `json:"Q"`
}

// SquareRecord is a (rank, file) pair, both 0-7.
type SquareRecord struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

// NewRecord converts a position to its record form.
func NewRecord(pos *chess.Position) *Record {
	r := &Record{
		Version:        FormatVersion,
		ID:             pos.ID.String(),
		Board:          boardToRecord(&pos.Board),
		MoveCount:      pos.MoveCount,
		CurrentPlayer:  pos.ToMove.String(),
		CastlingRights: castlingToRecord(pos.Castling),
		EnPassant:      enPassantToRecord(pos.EnPassant, pos.EPSquare),
	}

	snapshots := pos.History.Snapshots()
	r.History = make([]SnapshotRecord, len(snapshots))
	for i := range snapshots {
		s := &snapshots[i]
		r.History[i] = SnapshotRecord{
			Board:          boardToRecord(&s.Board),
			CastlingRights: castlingToRecord(s.Castling),
			EnPassant:      enPassantToRecord(s.EnPassant, s.EPSquare),
		}
	}
	return r
}

// Position converts a record back to a position, checking that it
// describes a state the engine could have reached.
func (r *Record) Position() (*chess.Position, error) {
	if r.Version != FormatVersion {
		return nil, formatError("unsupported version %d", r.Version)
	}

	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, formatError("id %q: %v", r.ID, err)
	}

	pos := &chess.Position{ID: id}

	if pos.Board, err = boardFromRecord(r.Board); err != nil {
		return nil, err
	}

	if r.MoveCount < 0 {
		return nil, formatError("negative move count %d", r.MoveCount)
	}
	if len(r.History) != r.MoveCount {
		return nil, formatError("%d history entries for %d moves", len(r.History), r.MoveCount)
	}
	pos.MoveCount = r.MoveCount

	colour, ok := chess.ParseColour(r.CurrentPlayer)
	if !ok {
		return nil, formatError("current player %q", r.CurrentPlayer)
	}
	pos.ToMove = colour

	pos.Castling = castlingFromRecord(r.CastlingRights)
	if pos.EnPassant, pos.EPSquare, err = enPassantFromRecord(r.EnPassant); err != nil {
		return nil, err
	}

	snapshots := make([]chess.Snapshot, len(r.History))
	for i, h := range r.History {
		s := &snapshots[i]
		if s.Board, err = boardFromRecord(h.Board); err != nil {
			return nil, errors.Wrapf(err, "history entry %d", i+1)
		}
		s.Castling = castlingFromRecord(h.CastlingRights)
		if s.EnPassant, s.EPSquare, err = enPassantFromRecord(h.EnPassant); err != nil {
			return nil, errors.Wrapf(err, "history entry %d", i+1)
		}
	}
	if err := checkRightsMonotonic(snapshots, pos.Castling); err != nil {
		return nil, err
	}
	pos.History = chess.NewHistory(snapshots)

	return pos, nil
}

// checkRightsMonotonic rejects a history in which a castling right comes back.
func checkRightsMonotonic(snapshots []chess.Snapshot, current chess.CastlingRights) error {
	for i := 1; i <= len(snapshots); i++ {
		next := current
		if i < len(snapshots) {
			next = snapshots[i].Castling
		}
		if !snapshots[i-1].Castling.Covers(next) {
			return formatError("castling rights regained after history entry %d", i)
		}
	}
	return nil
}

func boardToRecord(b *chess.Board) BoardRecord {
	rows := make(BoardRecord, chess.BoardSize)
	for rank := 0; rank < chess.BoardSize; rank++ {
		rows[rank] = make([]*PieceRecord, chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			p := b.Get(chess.Sq(file, rank))
			if p.IsEmpty() {
				continue
			}
			rows[rank][file] = &PieceRecord{Color: p.Colour.String(), Kind: p.Kind.String()}
		}
	}
	return rows
}

func boardFromRecord(rows BoardRecord) (chess.Board, error) {
	var b chess.Board
	if len(rows) != chess.BoardSize {
		return b, formatError("board has %d ranks", len(rows))
	}
	for rank, row := range rows {
		if len(row) != chess.BoardSize {
			return b, formatError("rank %d has %d files", rank+1, len(row))
		}
		for file, cell := range row {
			if cell == nil {
				continue
			}
			colour, ok := chess.ParseColour(cell.Color)
			if !ok {
				return b, formatError("square %s: colour %q", chess.Sq(file, rank), cell.Color)
			}
			kind, ok := chess.ParseKind(cell.Kind)
			if !ok {
				return b, formatError("square %s: kind %q", chess.Sq(file, rank), cell.Kind)
			}
			b.Set(chess.Sq(file, rank), chess.Piece{Colour: colour, Kind: kind})
		}
	}
	return b, nil
}

func castlingToRecord(c chess.CastlingRights) CastlingRecord {
	return CastlingRecord{
		White: SideRecord{K: c.White.Kingside, Q: c.White.Queenside},
		Black: SideRecord{K: c.Black.Kingside, Q: c.Black.Queenside},
	}
}

func castlingFromRecord(c CastlingRecord) chess.CastlingRights {
	return chess.CastlingRights{
		White: chess.SideRights{Kingside: c.White.K, Queenside: c.White.Q},
		Black: chess.SideRights{Kingside: c.Black.K, Queenside: c.Black.Q},
	}
}

func enPassantToRecord(valid bool, sq chess.Square) *SquareRecord {
	if !valid {
		return nil
	}
	return &SquareRecord{Rank: sq.Rank, File: sq.File}
}

func enPassantFromRecord(r *SquareRecord) (bool, chess.Square, error) {
	if r == nil {
		return false, chess.Square{}, nil
	}
	sq := chess.Sq(r.File, r.Rank)
	if !sq.InBounds() {
		return false, chess.Square{}, formatError("en passant square (%d,%d) off the board", r.Rank, r.File)
	}
	return true, sq, nil
}

func formatError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrPersistenceFormat)
}
