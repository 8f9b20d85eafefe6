// internal/guide/errors.go
//
// Structured errors for strategy guide parsing.
// Every failure carries a Kind from a closed set so callers can branch on
// what went wrong with errors.Is instead of matching message text.

package guide

import "fmt"

// Kind is a machine-readable failure category.
type Kind string

const (
	// Per-line failures. The runner skips the line and keeps going.
	KindMissingChar      Kind = "MISSING_CHAR"
	KindInvalidChar      Kind = "INVALID_CHAR"
	KindMissingDelimiter Kind = "MISSING_DELIMITER"
	KindTrailingChars    Kind = "TRAILING_CHARS"

	// Whole-run failures. Nothing is scored.
	KindMissingModeLine Kind = "MISSING_MODE_LINE"
	KindUnknownMode     Kind = "UNKNOWN_MODE"
	KindIOFailure       Kind = "IO_FAILURE"
)

// Error is a parse or input failure with optional context.
type Error struct {
	Kind   Kind
	Column int    // 1 or 2 for character errors, 0 otherwise
	Char   rune   // offending rune for KindInvalidChar
	Text   string // offending header for KindUnknownMode
	Cause  error
}

// Sentinels for errors.Is. Only Kind is compared.
var (
	ErrMissingChar      = &Error{Kind: KindMissingChar}
	ErrInvalidChar      = &Error{Kind: KindInvalidChar}
	ErrMissingDelimiter = &Error{Kind: KindMissingDelimiter}
	ErrTrailingChars    = &Error{Kind: KindTrailingChars}
	ErrMissingModeLine  = &Error{Kind: KindMissingModeLine}
	ErrUnknownMode      = &Error{Kind: KindUnknownMode}
	ErrIOFailure        = &Error{Kind: KindIOFailure}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingChar:
		return fmt.Sprintf("missing column %d character", e.Column)
	case KindInvalidChar:
		return fmt.Sprintf("invalid column %d character %q", e.Column, e.Char)
	case KindMissingDelimiter:
		return "invalid or missing delimiter"
	case KindTrailingChars:
		return "unexpected trailing characters"
	case KindMissingModeLine:
		return "malformed input: missing mode line"
	case KindUnknownMode:
		return fmt.Sprintf("malformed input: unknown mode %q", e.Text)
	case KindIOFailure:
		if e.Cause == nil {
			return "read input"
		}
		return "read input: " + e.Cause.Error()
	}
	return string(e.Kind)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}
