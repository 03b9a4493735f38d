// Package cmd implements the fincalc command line application.
package cmd

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&netWorthCmd{},
	&sipCmd{},
	&categoriesCmd{},
	&insightsCmd{},
	&topicCmd{},
	&serveCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables debug logging.
var Verbose = flag.Bool("v", false, "verbose logging")

// stdout receives the command outputs.
var stdout io.Writer = os.Stdout

// newLogger returns a text logger on stderr for the given component. -v
// lowers the level to debug.
func newLogger(level slog.Level, component string) *slog.Logger {
	if *Verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", component)
}
