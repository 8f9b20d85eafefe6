package guide

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/robalobadob/rps-guide/internal/game"
)

func TestParseLineRoundTrip(t *testing.T) {
	for _, c1 := range []Column1{A, B, C} {
		for _, c2 := range []Column2{X, Y, Z} {
			text := c1.String() + " " + c2.String()
			got, err := ParseLine(text)
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", text, err)
			}
			if got.Col1 != c1 || got.Col2 != c2 {
				t.Fatalf("ParseLine(%q) = %+v, want {%s %s}", text, got, c1, c2)
			}
		}
	}
}

func TestParseLineFailures(t *testing.T) {
	cases := []struct {
		line    string
		want    error
		column  int
		char    rune
		message string
	}{
		{"", ErrMissingChar, 1, 0, "missing column 1 character"},
		{"Q Y", ErrInvalidChar, 1, 'Q', `invalid column 1 character 'Q'`},
		{"X Y", ErrInvalidChar, 1, 'X', `invalid column 1 character 'X'`},
		{"A", ErrMissingDelimiter, 0, 0, "invalid or missing delimiter"},
		{"AY", ErrMissingDelimiter, 0, 0, "invalid or missing delimiter"},
		{"A\tY", ErrMissingDelimiter, 0, 0, "invalid or missing delimiter"},
		{"A ", ErrMissingChar, 2, 0, "missing column 2 character"},
		{"A  Y", ErrInvalidChar, 2, ' ', `invalid column 2 character ' '`},
		{"A A", ErrInvalidChar, 2, 'A', `invalid column 2 character 'A'`},
		{"A y", ErrInvalidChar, 2, 'y', `invalid column 2 character 'y'`},
		{"A YZ", ErrTrailingChars, 0, 0, "unexpected trailing characters"},
		{"A Y ", ErrTrailingChars, 0, 0, "unexpected trailing characters"},
		// first failure wins: column 1 is checked before anything else
		{"Q", ErrInvalidChar, 1, 'Q', `invalid column 1 character 'Q'`},
		{"é Y", ErrInvalidChar, 1, 'é', `invalid column 1 character 'é'`},
	}
	for _, c := range cases {
		_, err := ParseLine(c.line)
		if !errors.Is(err, c.want) {
			t.Errorf("ParseLine(%q) error = %v, want kind %s", c.line, err, c.want.(*Error).Kind)
			continue
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Fatalf("ParseLine(%q) error %T is not *Error", c.line, err)
		}
		if perr.Column != c.column || perr.Char != c.char {
			t.Errorf("ParseLine(%q) column/char = %d/%q, want %d/%q", c.line, perr.Column, perr.Char, c.column, c.char)
		}
		if perr.Error() != c.message {
			t.Errorf("ParseLine(%q) message = %q, want %q", c.line, perr.Error(), c.message)
		}
	}
}

func TestParseMode(t *testing.T) {
	for header, want := range map[string]Mode{"Part 1": Part1, "Part 2": Part2} {
		got, err := ParseMode(header)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", header, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %v, want %v", header, got, want)
		}
	}

	for _, header := range []string{"Part 3", "part 1", "Part 1 ", " Part 2", "Part1", ""} {
		_, err := ParseMode(header)
		if !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error = %v, want unknown mode", header, err)
			continue
		}
		if err.(*Error).Text != header {
			t.Errorf("ParseMode(%q) kept header %q", header, err.(*Error).Text)
		}
	}
}

func TestColumnConversions(t *testing.T) {
	hands := map[Column1]game.Hand{A: game.Rock, B: game.Paper, C: game.Scissors}
	for c, want := range hands {
		if got := c.Hand(); got != want {
			t.Errorf("%s.Hand() = %s, want %s", c, got, want)
		}
	}
	hands2 := map[Column2]game.Hand{X: game.Rock, Y: game.Paper, Z: game.Scissors}
	for c, want := range hands2 {
		if got := c.Hand(); got != want {
			t.Errorf("%s.Hand() = %s, want %s", c, got, want)
		}
	}
	outcomes := map[Column2]game.Outcome{X: game.Lose, Y: game.Draw, Z: game.Win}
	for c, want := range outcomes {
		if got := c.Outcome(); got != want {
			t.Errorf("%s.Outcome() = %s, want %s", c, got, want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"Part 1", []string{"Part 1"}},
		{"Part 1\nA Y\n", []string{"Part 1", "A Y"}},
		{"Part 1\r\nA Y\r\n", []string{"Part 1", "A Y"}},
		{"Part 1\nA Y\n\n", []string{"Part 1", "A Y", ""}},
		{"Part 1\n\nA Y", []string{"Part 1", "", "A Y"}},
	}
	for _, c := range cases {
		if got := SplitLines(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := &Error{Kind: KindIOFailure, Cause: cause}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if !errors.Is(err, ErrIOFailure) {
		t.Fatal("expected io failure kind")
	}
	if err.Error() != "read input: disk on fire" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
