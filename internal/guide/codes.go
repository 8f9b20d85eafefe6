// internal/guide/codes.go
//
// Column codes as they appear in a strategy guide.
//
// The two columns get separate types so the second column can be read as a
// Hand (Part 1) or as an Outcome (Part 2) without ever mixing it up with the
// first column.

package guide

import "github.com/robalobadob/rps-guide/internal/game"

// Column1 is the opponent's code: A, B or C.
type Column1 int

const (
	A Column1 = iota + 1
	B
	C
)

// Column2 is our code: X, Y or Z.
type Column2 int

const (
	X Column2 = iota + 1
	Y
	Z
)

// Column1FromRune maps 'A', 'B', 'C' to a Column1 code.
func Column1FromRune(r rune) (Column1, error) {
	switch r {
	case 'A':
		return A, nil
	case 'B':
		return B, nil
	case 'C':
		return C, nil
	}
	return 0, &Error{Kind: KindInvalidChar, Column: 1, Char: r}
}

// Column2FromRune maps 'X', 'Y', 'Z' to a Column2 code.
func Column2FromRune(r rune) (Column2, error) {
	switch r {
	case 'X':
		return X, nil
	case 'Y':
		return Y, nil
	case 'Z':
		return Z, nil
	}
	return 0, &Error{Kind: KindInvalidChar, Column: 2, Char: r}
}

// Hand maps A, B, C to Rock, Paper, Scissors.
func (c Column1) Hand() game.Hand {
	switch c {
	case A:
		return game.Rock
	case B:
		return game.Paper
	case C:
		return game.Scissors
	}
	return 0
}

func (c Column1) String() string {
	switch c {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	}
	return "?"
}

// Hand maps X, Y, Z to Rock, Paper, Scissors.
func (c Column2) Hand() game.Hand {
	switch c {
	case X:
		return game.Rock
	case Y:
		return game.Paper
	case Z:
		return game.Scissors
	}
	return 0
}

// Outcome maps X, Y, Z to Lose, Draw, Win.
func (c Column2) Outcome() game.Outcome {
	switch c {
	case X:
		return game.Lose
	case Y:
		return game.Draw
	case Z:
		return game.Win
	}
	return 0
}

func (c Column2) String() string {
	switch c {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return "?"
}
