package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess/internal/errors"
)

// Log output formats.
const (
	LogFormatAuto    = "auto"    // console on a terminal, JSON otherwise
	LogFormatConsole = "console" // human readable
	LogFormatJSON    = "json"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  zerolog.InfoLevel.String(),
		Format: LogFormatAuto,
	}
}

// ParsedLevel returns Level as a zerolog level.
func (l *LogConfig) ParsedLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(l.Level)
}

// Validate checks that the logging configuration is valid.
func (l *LogConfig) Validate() error {
	if _, err := l.ParsedLevel(); err != nil {
		return invalidf("log level %q: %v", l.Level, err)
	}
	switch l.Format {
	case LogFormatAuto, LogFormatConsole, LogFormatJSON:
		return nil
	}
	return invalidf("log format %q is not one of auto, console, json", l.Format)
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, errors.ErrInvalidConfig)...)
}
