// logging.go - zerolog setup
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// initLogger builds the application logger. The TUI owns the terminal,
// so logs go to a file when one is configured and are discarded
// otherwise. An unparseable level falls back to info.
func initLogger(level, file string) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = io.Discard
	cleanup := func() {}

	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return zerolog.Nop(), cleanup, err
		}
		out = f
		cleanup = func() { _ = f.Close() }
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return logger, cleanup, nil
}
