package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-board-go/internal/config"
	"github.com/lgbarn/chess-board-go/internal/engine"
	"github.com/lgbarn/chess-board-go/internal/errors"
	"github.com/lgbarn/chess-board-go/internal/hashing"
	"github.com/lgbarn/chess-board-go/internal/replay"
)

// ResultWriter is the interface for reporting replay results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult reports a single replayed script.
	WriteResult(res *replay.Result) error

	// Close writes any pending output.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.Output.
func NewResultWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter prints a summary line per script, followed by the final board
// when boards are enabled.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes one script's summary.
func (tw *TextWriter) WriteResult(res *replay.Result) error {
	if res.Failed() {
		_, err := fmt.Fprintf(tw.w, "%s: not replayed: %v\n", res.Script, res.Err)
		return err
	}

	_, err := fmt.Fprintf(tw.w, "%s: %d of %d moves applied, %s to move\n",
		res.Script, res.Applied(), res.Moves, res.Position.ToMove)
	if err != nil {
		return err
	}
	if res.DuplicateOf != "" {
		if _, err := fmt.Fprintf(tw.w, "  same final position as %s\n", res.DuplicateOf); err != nil {
			return err
		}
	}
	for _, f := range res.Failures() {
		if _, err := fmt.Fprintf(tw.w, "  %v\n", f); err != nil {
			return err
		}
	}
	if tw.cfg.Output.ShowBoard {
		return WritePosition(tw.w, res.Position, tw.cfg.Output.ShowFEN)
	}
	if tw.cfg.Output.ShowFEN {
		_, err = fmt.Fprintln(tw.w, engine.PositionToFEN(res.Position))
	}
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONResult is one replayed script in JSON form.
type JSONResult struct {
	Script   string        `json:"script"`
	ID       string        `json:"id,omitempty"`
	Moves    int           `json:"moves"`
	Applied  int           `json:"applied"`
	Failures []JSONFailure `json:"failures,omitempty"`
	Dropped  string        `json:"dropped,omitempty"`
	Error    string        `json:"error,omitempty"`
	ToMove   string        `json:"toMove,omitempty"`
	FEN      string        `json:"fen,omitempty"`
	Hash     string        `json:"hash,omitempty"`

	DuplicateOf string `json:"duplicateOf,omitempty"`
}

// JSONFailure is a move that could not be applied.
type JSONFailure struct {
	Ply   int    `json:"ply"`
	From  string `json:"from"`
	To    string `json:"to"`
	Error string `json:"error"`
}

// JSONOutput holds all results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a replay result to its JSON form.
func ResultToJSON(res *replay.Result) *JSONResult {
	jr := &JSONResult{
		Script:  res.Script,
		Moves:   res.Moves,
		Dropped: res.Dropped,
	}
	if res.Failed() {
		jr.Error = res.Err.Error()
		return jr
	}

	jr.ID = res.Position.ID.String()
	jr.Applied = res.Applied()
	jr.ToMove = res.Position.ToMove.String()
	jr.FEN = engine.PositionToFEN(res.Position)
	jr.Hash = fmt.Sprintf("%016x", hashing.GenerateZobristHash(res.Position))
	jr.DuplicateOf = res.DuplicateOf
	for _, f := range res.Failures() {
		jr.Failures = append(jr.Failures, failureToJSON(f))
	}
	return jr
}

func failureToJSON(err error) JSONFailure {
	jf := JSONFailure{Error: err.Error()}
	var moveErr *errors.MoveError
	if errors.As(err, &moveErr) {
		jf.Ply = moveErr.Ply
		jf.From = moveErr.From
		jf.To = moveErr.To
		if moveErr.Err != nil {
			jf.Error = moveErr.Err.Error()
		}
	}
	return jf
}

// JSONWriter buffers results and writes them as one JSON document on Close.
type JSONWriter struct {
	w       io.Writer
	results []*JSONResult
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteResult buffers a result for output.
func (jw *JSONWriter) WriteResult(res *replay.Result) error {
	jw.results = append(jw.results, ResultToJSON(res))
	return nil
}

// Close writes all buffered results as a JSON object.
func (jw *JSONWriter) Close() error {
	out := &JSONOutput{Results: jw.results}
	if out.Results == nil {
		out.Results = []*JSONResult{}
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	jw.results = jw.results[:0]
	return err
}
