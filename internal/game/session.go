// Package game ties a position to the operations a player drives it with.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-board-go/internal/chess"
	"github.com/lgbarn/chess-board-go/internal/config"
	"github.com/lgbarn/chess-board-go/internal/engine"
	"github.com/lgbarn/chess-board-go/internal/storage"
)

// Session owns one position for the lifetime of a game.
// It is not safe for concurrent use.
type Session struct {
	pos *chess.Position
	cfg *config.Config
}

// NewSession starts a session from cfg.LoadFile, cfg.StartFEN or the
// standard starting position, in that order of preference.
func NewSession(cfg *config.Config) (*Session, error) {
	var (
		pos *chess.Position
		err error
	)
	if cfg.LoadFile != "" {
		pos, err = storage.Load(cfg.LoadFile)
	} else {
		pos, err = engine.StartPosition(cfg.StartFEN)
	}
	if err != nil {
		return nil, err
	}

	cfg.Logf(1, "game %s: %d moves played, %s to move", pos.ID, pos.MoveCount, pos.ToMove)
	return &Session{pos: pos, cfg: cfg}, nil
}

// Apply moves the piece on start to end.
func (s *Session) Apply(start, end string) error {
	if err := engine.Apply(s.pos, start, end); err != nil {
		s.cfg.Logf(1, "move %s-%s rejected: %v", start, end, err)
		return err
	}
	s.cfg.Logf(2, "move %d: %s-%s", s.pos.MoveCount, start, end)
	return nil
}

// Undo takes back the last move.
func (s *Session) Undo() error {
	if err := engine.Undo(s.pos); err != nil {
		s.cfg.Logf(1, "undo: %v", err)
		return err
	}
	s.cfg.Logf(2, "undo: back to move %d", s.pos.MoveCount)
	return nil
}

// Save writes the game to path.
func (s *Session) Save(path string) error {
	if err := storage.Save(s.pos, path); err != nil {
		s.cfg.Logf(1, "%v", err)
		return err
	}
	s.cfg.Logf(1, "saved %s", path)
	return nil
}

// Load replaces the game with the one saved at path. If loading fails the
// current game is kept unchanged.
func (s *Session) Load(path string) error {
	pos, err := storage.Load(path)
	if err != nil {
		s.cfg.Logf(1, "%v", err)
		return err
	}
	s.pos = pos
	s.cfg.Logf(1, "loaded %s: %d moves played, %s to move", path, pos.MoveCount, pos.ToMove)
	return nil
}

// CurrentPlayer returns the side to move.
func (s *Session) CurrentPlayer() chess.Colour {
	return s.pos.ToMove
}

// BoardSnapshot returns a copy of the board.
func (s *Session) BoardSnapshot() chess.Board {
	return s.pos.Board
}

// Position returns the live position for rendering. Callers must not modify it.
func (s *Session) Position() *chess.Position {
	return s.pos
}

// FEN returns the position as a FEN string.
func (s *Session) FEN() string {
	return engine.PositionToFEN(s.pos)
}

// ID returns the game's identifier.
func (s *Session) ID() uuid.UUID {
	return s.pos.ID
}
