// internal/tally/tally.go
//
// Runs a whole strategy guide and sums the round scores.
//
// Input shape:
//   - line 1: "Part 1" or "Part 2" (exact); anything else aborts the run.
//   - lines 2..N: strategy lines, parsed independently.
//
// Lines that fail to parse are logged and skipped; they never abort the run.
// Line numbers in diagnostics are 1-based and count from the first strategy
// line, not the mode line.

package tally

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/robalobadob/rps-guide/internal/guide"
	"github.com/robalobadob/rps-guide/internal/logging"
)

// Result is the outcome of a completed run.
type Result struct {
	Mode    guide.Mode
	Total   int
	Scored  int // strategy lines that contributed to Total
	Skipped int // strategy lines rejected by the parser
}

// Run reads all of r and tallies it.
// Returned errors are always fatal *guide.Error values; per-line failures
// only show up in the log and in Result.Skipped.
func Run(r io.Reader, logger zerolog.Logger) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, &guide.Error{Kind: guide.KindIOFailure, Cause: err}
	}
	return Text(string(data), logger)
}

// Text tallies an already-read strategy guide.
func Text(text string, logger zerolog.Logger) (Result, error) {
	lines := guide.SplitLines(text)
	if len(lines) == 0 {
		return Result{}, &guide.Error{Kind: guide.KindMissingModeLine}
	}

	mode, err := guide.ParseMode(lines[0])
	if err != nil {
		return Result{}, err
	}
	score := ScorerFor(mode)

	res := Result{Mode: mode}
	for i, raw := range lines[1:] {
		n := i + 1
		line, err := guide.ParseLine(raw)
		if err != nil {
			res.Skipped++
			logger.Warn().
				Int(logging.LineField, n).
				Err(err).
				Msgf("Parsing error on line %d: %v", n, err)
			continue
		}
		res.Scored++
		res.Total += score(line)
	}

	logger.Debug().
		Stringer("mode", res.Mode).
		Int("scored", res.Scored).
		Int("skipped", res.Skipped).
		Int("total", res.Total).
		Msg("strategy guide tallied")
	return res, nil
}
