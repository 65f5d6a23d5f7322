// Package config provides configuration for minimax-chess self-play runs.
package config

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Config holds all program configuration.
type Config struct {
	Search SearchConfig
	Game   GameConfig
	Output OutputConfig
	Log    LogConfig

	// PerftDepth runs a perft count instead of games when positive.
	PerftDepth int

	// Verify re-checks every search against exhaustive minimax.
	Verify bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     *NewSearchConfig(),
		Game:       *NewGameConfig(),
		Output:     *NewOutputConfig(),
		Log:        *NewLogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream games and boards are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	for _, v := range []interface{ Validate() error }{&c.Search, &c.Game, &c.Output, &c.Log} {
		if err := v.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if c.PerftDepth < 0 {
		result = multierror.Append(result, invalidf("perft depth %d is negative", c.PerftDepth))
	}
	return result.ErrorOrNil()
}
