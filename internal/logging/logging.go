// internal/logging/logging.go
//
// Logger construction for the CLI.
// Diagnostics go to stderr as plain text: the event message and nothing
// else for line errors, message plus key=value fields for everything else.
//
// Line errors (warn) and fatal errors (error) are part of the program's
// output, so the level is never raised above warn.

package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// LineField is the structured field carrying a 1-based strategy line number.
const LineField = "line"

// New returns a logger that writes human-readable lines to w at level,
// capped at warn.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if level > zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	out := zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       true,
		PartsOrder:    []string{zerolog.MessageFieldName},
		FieldsExclude: []string{LineField, zerolog.ErrorFieldName},
	}
	return zerolog.New(out).Level(level)
}
