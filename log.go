package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Detection progress is debug-level only,
// so normal runs stay quiet.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}

// verboseRequested checks for the --verbose flag or the JRT_VERBOSE
// environment toggle, and strips the flag from args. "-v" stays reserved for
// the version command.
func verboseRequested(args []string) ([]string, bool) {
	verbose := os.Getenv("JRT_VERBOSE") != ""
	kept := args[:0:0]
	for _, arg := range args {
		if arg == "--verbose" {
			verbose = true
			continue
		}
		kept = append(kept, arg)
	}
	return kept, verbose
}
