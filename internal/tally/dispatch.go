// internal/tally/dispatch.go
//
// Mode dispatch: picks how each strategy line is scored.
//   - Part 1: column 2 is our hand.
//   - Part 2: column 2 is the outcome we want; our hand is derived from it.

package tally

import (
	"github.com/robalobadob/rps-guide/internal/game"
	"github.com/robalobadob/rps-guide/internal/guide"
)

// RoundScorer turns one parsed strategy line into points.
type RoundScorer func(guide.Line) int

// Part1Round reads column 2 as the hand we throw.
func Part1Round(l guide.Line) int {
	return game.Score(l.Col1.Hand(), l.Col2.Hand())
}

// Part2Round reads column 2 as the outcome we want and derives our hand.
func Part2Round(l guide.Line) int {
	opponent := l.Col1.Hand()
	return game.Score(opponent, game.PickStrategy(opponent, l.Col2.Outcome()))
}

// ScorerFor returns the round scorer for m, or nil for an unknown mode.
func ScorerFor(m guide.Mode) RoundScorer {
	switch m {
	case guide.Part1:
		return Part1Round
	case guide.Part2:
		return Part2Round
	}
	return nil
}
