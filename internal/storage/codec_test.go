package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-board-go/internal/chess"
	"github.com/lgbarn/chess-board-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-board-go/internal/errors"
	"github.com/lgbarn/chess-board-go/internal/testutil"
)

func playedPosition(t *testing.T, moves ...string) *chess.Position {
	t.Helper()
	pos := chess.NewPosition()
	for i := 0; i+1 < len(moves); i += 2 {
		require.NoError(t, engine.Apply(pos, moves[i], moves[i+1]))
	}
	return pos
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
	}{
		{"initial", nil},
		{"en passant pending", []string{"e2", "e4"}},
		{"after en passant capture", []string{"e2", "e4", "a7", "a6", "e4", "e5", "d7", "d5", "e5", "d6"}},
		{"after castling", []string{"e2", "e4", "e7", "e5", "g1", "f3", "g8", "f6", "f1", "c4", "f8", "c5", "e1", "g1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := playedPosition(t, tt.moves...)
			path := filepath.Join(t.TempDir(), "game.json")

			require.NoError(t, Save(pos, path))
			loaded, err := Load(path)
			require.NoError(t, err)

			testutil.AssertPositionEqual(t, loaded, pos)
		})
	}
}

func TestSaveLoad_UndoAfterLoad(t *testing.T) {
	pos := playedPosition(t, "e2", "e4", "e7", "e5", "e1", "e2")
	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, Save(pos, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	for loaded.History.Len() > 0 {
		require.NoError(t, engine.Undo(loaded))
	}
	want := chess.NewPosition()
	want.ID = pos.ID
	testutil.AssertPositionEqual(t, loaded, want)
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.json")

	require.NoError(t, Save(chess.NewPosition(), path))
	second := playedPosition(t, "d2", "d4")
	require.NoError(t, Save(second, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.MoveCount)
	assert.Equal(t, second.ID, loaded.ID)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files left behind")
}

func TestSave_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "game.json")

	err := Save(chess.NewPosition(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chesserrors.ErrPersistenceIO))

	var fileErr *chesserrors.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "save", fileErr.Op)
	assert.Equal(t, path, fileErr.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, chesserrors.ErrPersistenceIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEncode_Layout(t *testing.T) {
	pos := playedPosition(t, "e2", "e4")
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pos))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	for _, key := range []string{"version", "id", "board", "move_count", "history", "current_player", "castling_rights", "en_passant"} {
		assert.Contains(t, raw, key)
	}

	var rec Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "black", rec.CurrentPlayer)
	assert.Equal(t, 1, rec.MoveCount)
	require.Len(t, rec.History, 1)
	assert.Equal(t, &SquareRecord{Rank: 2, File: 4}, rec.EnPassant)
	assert.Nil(t, rec.History[0].EnPassant)
	assert.Equal(t, &PieceRecord{Color: "white", Kind: "pawn"}, rec.Board[3][4])
	assert.Nil(t, rec.Board[1][4])
	assert.Equal(t, SideRecord{K: true, Q: true}, rec.CastlingRights.White)
}

func TestDecode_Rejects(t *testing.T) {
	valid := func() *Record {
		return NewRecord(playedPosition(t, "e2", "e4", "e7", "e5"))
	}

	tests := []struct {
		name   string
		mutate func(r *Record)
	}{
		{"wrong version", func(r *Record) { r.Version = 99 }},
		{"bad id", func(r *Record) { r.ID = "not-a-uuid" }},
		{"seven ranks", func(r *Record) { r.Board = r.Board[:7] }},
		{"short rank", func(r *Record) { r.Board[2] = r.Board[2][:5] }},
		{"unknown colour", func(r *Record) { r.Board[0][0].Color = "green" }},
		{"unknown kind", func(r *Record) { r.Board[0][0].Kind = "archbishop" }},
		{"empty kind", func(r *Record) { r.Board[0][0].Kind = "none" }},
		{"negative move count", func(r *Record) { r.MoveCount = -1 }},
		{"history length mismatch", func(r *Record) { r.MoveCount = 5 }},
		{"unknown player", func(r *Record) { r.CurrentPlayer = "red" }},
		{"en passant off board", func(r *Record) { r.EnPassant = &SquareRecord{Rank: 8, File: 0} }},
		{"bad history board", func(r *Record) { r.History[1].Board = r.History[1].Board[:3] }},
		{"rights regained", func(r *Record) {
			r.History[0].CastlingRights.White.K = false
		}},
		{"current rights regained", func(r *Record) {
			r.History[1].CastlingRights.Black.Q = false
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid()
			tt.mutate(rec)
			data, err := json.Marshal(rec)
			require.NoError(t, err)

			_, err = Decode(bytes.NewReader(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, chesserrors.ErrPersistenceFormat), "got %v", err)
		})
	}
}

func TestDecode_Garbage(t *testing.T) {
	inputs := map[string]string{
		"empty":         "",
		"not json":      "this is not a saved game",
		"truncated":     `{"version": 1, "board": [`,
		"wrong type":    `{"version": "one"}`,
		"unknown field": `{"version": 1, "turn": "white"}`,
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, chesserrors.ErrPersistenceFormat), "got %v", err)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestDecode_ReadFailure(t *testing.T) {
	_, err := Decode(failingReader{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, chesserrors.ErrPersistenceIO))
	assert.True(t, errors.Is(err, io.ErrClosedPipe))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestEncode_WriteFailure(t *testing.T) {
	err := Encode(failingWriter{}, chess.NewPosition())
	require.Error(t, err)
	assert.True(t, errors.Is(err, chesserrors.ErrPersistenceIO))
}
