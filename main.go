package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/robalobadob/rps-guide/internal/config"
	"github.com/robalobadob/rps-guide/internal/logging"
	"github.com/robalobadob/rps-guide/internal/tally"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run scores the strategy guide on stdin and returns the process exit code.
// The total goes to stdout; diagnostics and fatal errors go to stderr.
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	lvl, ok := cfg.Level()
	logger := logging.New(stderr, lvl)
	if !ok {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
	}

	res, err := tally.Run(stdin, logger)
	if err != nil {
		logger.Error().Msg(err.Error())
		return 1
	}
	fmt.Fprintln(stdout, res.Total)
	return 0
}
