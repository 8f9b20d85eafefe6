// internal/game/types.go
//
// Core type definitions for the rock-paper-scissors round engine.
// Defines:
//   - Hand: the choice a player throws in a round.
//   - Outcome: the result of a round from our side of the table.

package game

// Hand is one of the three throws.
// The zero value is not a valid hand.
type Hand int

const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

// hands lists every valid hand in declaration order.
var hands = [...]Hand{Rock, Paper, Scissors}

func (h Hand) String() string {
	switch h {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// Outcome is the result of a round for the player holding the guide.
type Outcome int

const (
	Lose Outcome = iota + 1
	Draw
	Win
)

// outcomes lists every valid outcome in declaration order.
var outcomes = [...]Outcome{Lose, Draw, Win}

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return "unknown"
}
