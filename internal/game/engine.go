// internal/game/engine.go
//
// Round engine for a single rock-paper-scissors throw.
// Responsibilities:
//   - Define the beats-relation (Rock > Scissors > Paper > Rock).
//   - Score a round: shape points plus outcome points.
//   - Pick the hand that forces a wanted outcome.
//
// Notes:
//   - Every function here is total over the valid hands; callers only
//     ever build hands through the guide package conversions.
package game

// Shape points awarded for the hand we throw.
const (
	rockPoints     = 1
	paperPoints    = 2
	scissorsPoints = 3
)

// Outcome points awarded for the round result.
const (
	losePoints = 0
	drawPoints = 3
	winPoints  = 6
)

// Beats returns the hand that h defeats.
func (h Hand) Beats() Hand {
	switch h {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	case Scissors:
		return Paper
	}
	return h
}

// Play resolves the outcome of me throwing against opponent.
//
// The loss check comes first, then the draw check; anything else is a win.
// The three cases are mutually exclusive because Beats is a 3-cycle.
func Play(opponent, me Hand) Outcome {
	switch {
	case opponent.Beats() == me:
		return Lose
	case opponent == me:
		return Draw
	default:
		return Win
	}
}

// Points returns the outcome component of a round score.
func (o Outcome) Points() int {
	switch o {
	case Lose:
		return losePoints
	case Draw:
		return drawPoints
	case Win:
		return winPoints
	}
	return 0
}

// Points returns the shape component of a round score.
func (h Hand) Points() int {
	switch h {
	case Rock:
		return rockPoints
	case Paper:
		return paperPoints
	case Scissors:
		return scissorsPoints
	}
	return 0
}

// Score returns the points for a single round: shape points for me plus
// outcome points for me against opponent. The result is in [1, 9].
func Score(opponent, me Hand) int {
	return me.Points() + Play(opponent, me).Points()
}

// PickStrategy returns the hand that produces outcome against opponent.
//
//   - Draw: throw the same hand.
//   - Lose: throw the hand opponent beats.
//   - Win:  throw the hand that beats opponent (Beats applied twice).
func PickStrategy(opponent Hand, outcome Outcome) Hand {
	switch outcome {
	case Lose:
		return opponent.Beats()
	case Win:
		return opponent.Beats().Beats()
	default:
		return opponent
	}
}
