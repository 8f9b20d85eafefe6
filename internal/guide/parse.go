// internal/guide/parse.go
//
// Parsing of strategy guide text.
// Responsibilities:
//   - Read the mode header ("Part 1" / "Part 2").
//   - Parse one strategy line ("A Y") into a pair of column codes.
//   - Split raw input into lines.
//
// A strategy line is checked left to right and the first failure wins:
// column 1, then the single space, then column 2, then end of line.

package guide

import (
	"strings"
	"unicode/utf8"
)

// Mode selects how column 2 is read for the whole run.
type Mode int

const (
	Part1 Mode = iota + 1 // column 2 is our hand
	Part2                 // column 2 is the outcome we want
)

// String returns the literal header that selects the mode.
func (m Mode) String() string {
	switch m {
	case Part1:
		return "Part 1"
	case Part2:
		return "Part 2"
	}
	return "unknown"
}

// ParseMode reads the header line. The match is exact: no trimming, no
// case folding.
func ParseMode(header string) (Mode, error) {
	switch header {
	case Part1.String():
		return Part1, nil
	case Part2.String():
		return Part2, nil
	}
	return 0, &Error{Kind: KindUnknownMode, Text: header}
}

// Line is one parsed strategy record.
type Line struct {
	Col1 Column1
	Col2 Column2
}

// ParseLine parses exactly "<col1> <col2>" with nothing after it.
func ParseLine(s string) (Line, error) {
	cur := cursor{rest: s}

	r, ok := cur.next()
	if !ok {
		return Line{}, &Error{Kind: KindMissingChar, Column: 1}
	}
	col1, err := Column1FromRune(r)
	if err != nil {
		return Line{}, err
	}

	if r, ok = cur.next(); !ok || r != ' ' {
		return Line{}, &Error{Kind: KindMissingDelimiter}
	}

	r, ok = cur.next()
	if !ok {
		return Line{}, &Error{Kind: KindMissingChar, Column: 2}
	}
	col2, err := Column2FromRune(r)
	if err != nil {
		return Line{}, err
	}

	if _, ok = cur.next(); ok {
		return Line{}, &Error{Kind: KindTrailingChars}
	}
	return Line{Col1: col1, Col2: col2}, nil
}

// cursor hands out one rune at a time.
type cursor struct {
	rest string
}

func (c *cursor) next() (rune, bool) {
	if c.rest == "" {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(c.rest)
	c.rest = c.rest[n:]
	return r, true
}

// SplitLines splits text on '\n' and drops one trailing '\r' per line.
// A final newline ends the last line; it does not start an empty one.
// Empty input yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	out := strings.Split(text, "\n")
	for i, line := range out {
		out[i] = strings.TrimSuffix(line, "\r")
	}
	return out
}
