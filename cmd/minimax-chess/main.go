// minimax-chess plays chess games between two fixed-depth alpha-beta
// searchers and prints the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess/internal/config"
	"github.com/lgbarn/minimax-chess/internal/output"
	"github.com/lgbarn/minimax-chess/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("minimax-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Log, cfg.LogFile, isTerminal(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.PerftDepth > 0 {
		if err := runPerft(cfg.OutputFile, cfg.Game.StartFEN, cfg.PerftDepth); err != nil {
			logger.Fatal().Err(err).Msg("perft failed")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	colored := !cfg.Output.NoColor && !cfg.Output.JSONFormat && isTerminal(os.Stdout)
	if err := run(ctx, cfg, newGameWriter(cfg, colored), logger); err != nil {
		logger.Error().Err(err).Msg("self-play finished with errors")
		stop()
		os.Exit(1)
	}
}

// newGameWriter picks the output writer for cfg.
func newGameWriter(cfg *config.Config, colored bool) output.GameWriter {
	if cfg.Output.JSONFormat {
		return output.NewJSONWriterSingle(cfg.OutputFile)
	}
	var boards *output.BoardWriter
	if cfg.Output.ShowBoard {
		boards = output.NewBoardWriter(cfg.OutputFile, colored)
	}
	return output.NewTextWriter(cfg.OutputFile, boards)
}

// run plays the configured games and writes every record, including those
// of games that stopped on an error.
func run(ctx context.Context, cfg *config.Config, gw output.GameWriter, logger zerolog.Logger) error {
	records, runErr := worker.NewRunner(cfg, logger).Run(ctx)

	for _, rec := range records {
		if err := gw.WriteGame(rec); err != nil {
			return err
		}
	}
	if err := gw.Close(); err != nil {
		return err
	}
	if runErr == nil {
		logger.Info().Int("games", len(records)).Msg("self-play complete")
	}
	return runErr
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: minimax-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess between two minimax searchers with alpha-beta pruning.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	printEnvHelp(os.Stderr)
}

func printEnvHelp(w io.Writer) {
	fmt.Fprintf(w, "\nEnvironment (also read from ./.env, overridden by flags):\n")
	for _, name := range []string{config.EnvDepth, config.EnvSeed, config.EnvWorkers, config.EnvGames, config.EnvLogLevel} {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
