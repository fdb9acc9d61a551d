// Package logging provides the structured logger used across the CLI and
// the orchestrator. Pipeline stages never write to stdout/stderr directly;
// the orchestrator takes a zerolog.Logger and emits log events through it.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console-formatted zerolog.Logger. Set verbose to true for
// debug-level output (the CLI's --verbose flag); otherwise info level.
func New(verbose bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}

	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(out).With().Timestamp().Logger()
}

// Stage wraps a logger with a fixed "stage" field, so every log line an
// orchestrator stage emits is attributable without threading a name through
// every call site.
func Stage(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("stage", name).Logger()
}
