// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/minimax-chess/internal/config"
)

var (
	// Games
	games    = flag.Int("games", 1, "Number of self-play games")
	workers  = flag.Int("workers", 0, "Games played in parallel (0 = one per CPU)")
	maxPlies = flag.Int("max-plies", 200, "Stop a game unfinished after this many plies (0 = no limit)")
	startFEN = flag.String("fen", "", "Start position in FEN (default: the initial position)")

	// Search
	depth = flag.Int("depth", config.DefaultDepth, "Search depth in plies")
	seed  = flag.Int64("seed", 0, "Tie-break seed (default: time based)")

	// Output
	jsonOutput = flag.Bool("json", false, "Write one JSON record per game")
	noColor    = flag.Bool("no-color", false, "Never colour boards")
	noBoard    = flag.Bool("no-board", false, "Do not print final boards")

	// Logging
	logLevel  = flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	logFormat = flag.String("log-format", config.LogFormatAuto, "Log format: auto, console, json")

	// Modes
	perftDepth = flag.Int("perft", 0, "Print perft counts up to this depth and exit")
	verify     = flag.Bool("verify", false, "Check every search against exhaustive minimax")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags applies command-line flags to the configuration. Only flags
// present in set override values from the environment.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyGameFlags(cfg, set)
	applySearchFlags(cfg, set)
	applyOutputFlags(cfg)
	applyLogFlags(cfg, set)

	cfg.PerftDepth = *perftDepth
	cfg.Verify = *verify
}

// applyGameFlags configures the self-play settings.
func applyGameFlags(cfg *config.Config, set map[string]bool) {
	if set["games"] {
		cfg.Game.Games = *games
	}
	if set["workers"] {
		cfg.Game.Workers = *workers
	}
	if set["max-plies"] {
		cfg.Game.MaxPlies = *maxPlies
	}
	if *startFEN != "" {
		cfg.Game.StartFEN = *startFEN
	}
}

// applySearchFlags configures the search settings.
func applySearchFlags(cfg *config.Config, set map[string]bool) {
	if set["depth"] {
		cfg.Search.Depth = *depth
	}
	if set["seed"] {
		cfg.Search.Seed = *seed
		cfg.Search.SeedSet = true
	}
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.NoColor = *noColor
	cfg.Output.ShowBoard = !*noBoard
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config, set map[string]bool) {
	if set["log-level"] {
		cfg.Log.Level = *logLevel
	}
	cfg.Log.Format = *logFormat
}
