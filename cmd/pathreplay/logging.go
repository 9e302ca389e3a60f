package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds a human-readable console logger at level.
func newLogger(out io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = noColor
		w.TimeFormat = time.TimeOnly
	})).Level(level).With().Timestamp().Logger()
}
