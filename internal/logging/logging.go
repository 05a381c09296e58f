// Package logging configures the CLI's zerolog logger. Library packages
// stay log-free; commands log progress to stderr.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. verbose raises the level
// from warn to debug.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
