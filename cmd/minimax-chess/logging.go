package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess/internal/config"
)

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLogger builds the program logger. Auto format picks the console
// writer when tty is true and JSON lines otherwise.
func newLogger(lc config.LogConfig, w io.Writer, tty bool) (zerolog.Logger, error) {
	level, err := lc.ParsedLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	switch lc.Format {
	case config.LogFormatConsole:
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !tty}
	case config.LogFormatAuto:
		if tty {
			out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
