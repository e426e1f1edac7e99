package replay

import (
	"bytes"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-board-go/internal/chess"
	"github.com/lgbarn/chess-board-go/internal/config"
	"github.com/lgbarn/chess-board-go/internal/engine"
	"github.com/lgbarn/chess-board-go/internal/errors"
	"github.com/lgbarn/chess-board-go/internal/hashing"
	"github.com/lgbarn/chess-board-go/internal/storage"
	"github.com/lgbarn/chess-board-go/internal/worker"
)

// Run applies every move of script to pos in order. A failed move is
// reported and skipped; it does not stop the replay. The returned error is
// nil when every move applied, otherwise a *multierror.Error holding one
// *errors.MoveError per failed ply.
func Run(pos *chess.Position, script *Script, cfg *config.Config) error {
	var result *multierror.Error

	for i, m := range script.Moves {
		ply := i + 1
		err := engine.Apply(pos, m.Start, m.End)
		if err == nil {
			cfg.Logf(2, "%s: ply %d %s-%s", script.Name, ply, m.Start, m.End)
			continue
		}

		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Ply = ply
		} else {
			err = &errors.MoveError{Err: err, Ply: ply, From: m.Start, To: m.End}
		}
		cfg.Logf(1, "%s: %v", script.Name, err)
		result = multierror.Append(result, err)
	}

	if script.Dropped != "" {
		cfg.Logf(1, "%s: ignoring unpaired token %q", script.Name, script.Dropped)
	}
	return result.ErrorOrNil()
}

// Result is the outcome of replaying one script file.
type Result struct {
	Script   string
	Position *chess.Position // Nil if the start position or script could not be read
	Moves    int             // Plies in the script
	Dropped  string
	Err      error // Setup failure, or the aggregated move failures

	// DuplicateOf names an earlier script that ended in the same position.
	// Only set when duplicate detection is enabled.
	DuplicateOf string
}

// Applied returns the number of plies that were applied.
func (r *Result) Applied() int {
	return r.Moves - len(r.Failures())
}

// Failures returns the individual move failures.
func (r *Result) Failures() []error {
	var merr *multierror.Error
	if errors.As(r.Err, &merr) {
		return merr.Errors
	}
	return nil
}

// Failed reports whether the script could not be replayed at all.
func (r *Result) Failed() bool {
	return r.Position == nil
}

// RunFile replays the script at path against a fresh start position.
func RunFile(path string, cfg *config.Config) Result {
	res := Result{Script: path}

	script, err := LoadScript(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Moves = len(script.Moves)
	res.Dropped = script.Dropped

	pos, err := startPosition(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	res.Position = pos
	res.Err = Run(pos, script, cfg)
	return res
}

// RunFiles replays each script on its own position, spreading the files
// over cfg.Replay.Workers goroutines. Results come back in the order of
// paths, and log lines are written grouped per script in that order.
func RunFiles(paths []string, cfg *config.Config) []Result {
	type outcome struct {
		res Result
		log bytes.Buffer
	}

	outcomes := worker.Map(paths, func(path string) *outcome {
		out := &outcome{}
		jobCfg := *cfg
		jobCfg.LogFile = &out.log
		out.res = RunFile(path, &jobCfg)
		return out
	}, worker.WithWorkers(cfg.Replay.Workers), worker.WithBufferSize(cfg.Replay.BufferSize))

	results := make([]Result, len(outcomes))
	for i, out := range outcomes {
		if cfg.LogFile != nil {
			out.log.WriteTo(cfg.LogFile) //nolint:errcheck // diagnostics only
		}
		results[i] = out.res
	}
	if cfg.Replay.FindDuplicates {
		markDuplicates(results, cfg)
	}
	return results
}

// markDuplicates sets DuplicateOf on every result whose final position was
// already reached by an earlier result.
func markDuplicates(results []Result, cfg *config.Config) {
	detector := hashing.NewDuplicateDetector(cfg.Replay.ExactDuplicates)
	for i := range results {
		if first, dup := detector.CheckAndAdd(results[i].Script, results[i].Position); dup {
			results[i].DuplicateOf = first.Name
			cfg.Logf(1, "%s: same final position as %s", results[i].Script, first.Name)
		}
	}
	cfg.Logf(2, "%d distinct final positions, %d duplicates", detector.UniqueCount(), detector.DuplicateCount())
}

// startPosition builds the position a replay starts from: a saved game,
// a FEN string, or the standard setup.
func startPosition(cfg *config.Config) (*chess.Position, error) {
	if cfg.LoadFile != "" {
		return storage.Load(cfg.LoadFile)
	}
	return engine.StartPosition(cfg.StartFEN)
}
