package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/lgbarn/chess-board-go/internal/chess"
	"github.com/lgbarn/chess-board-go/internal/errors"
)

// Encode writes pos, history included, as an indented JSON record.
func Encode(w io.Writer, pos *chess.Position) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewRecord(pos)); err != nil {
		return errors.Join(errors.ErrPersistenceIO, err)
	}
	return nil
}

// Decode reads one JSON record and returns the position it describes.
func Decode(r io.Reader) (*chess.Position, error) {
	src := &trackingReader{r: r}
	var rec Record
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		if src.err != nil {
			return nil, errors.Join(errors.ErrPersistenceIO, src.err)
		}
		return nil, errors.Join(errors.ErrPersistenceFormat, err)
	}
	return rec.Position()
}

// trackingReader remembers the first failure of the underlying reader so
// Decode can tell I/O errors from malformed content.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}

// Save writes pos to path. The file is written under a temporary name in
// the same directory and renamed into place, so an existing save is never
// left half-written.
func Save(pos *chess.Position, path string) (err error) {
	defer func() {
		if err != nil {
			err = &errors.FileError{Op: "save", Path: path, Err: err}
		}
	}()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Join(errors.ErrPersistenceIO, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName) //nolint:errcheck // best effort cleanup of the temp file
		}
	}()

	if err = Encode(tmp, pos); err != nil {
		tmp.Close() //nolint:errcheck // the encode error is the one to report
		return err
	}
	if err = tmp.Close(); err != nil {
		return errors.Join(errors.ErrPersistenceIO, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Join(errors.ErrPersistenceIO, err)
	}
	return nil
}

// Load reads the game saved at path. The caller's own position is not
// involved: on error nothing is returned and nothing needs rolling back.
func Load(path string) (pos *chess.Position, err error) {
	defer func() {
		if err != nil {
			err = &errors.FileError{Op: "load", Path: path, Err: err}
		}
	}()

	f, err := os.Open(path) //nolint:gosec // G304: path is chosen by the user
	if err != nil {
		return nil, errors.Join(errors.ErrPersistenceIO, err)
	}
	defer f.Close()

	return Decode(f)
}
