package worker

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess/internal/config"
	"github.com/lgbarn/minimax-chess/internal/output"
)

// Runner plays the games described by a Config on a worker pool.
type Runner struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewRunner creates a runner. cfg must already be validated.
func NewRunner(cfg *config.Config, logger zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// Items returns the work items for the configured games. Game i is seeded
// with Seed+2i so white and black searchers never share a stream.
func (r *Runner) Items() []WorkItem {
	base := r.cfg.Search.Seed
	if !r.cfg.Search.SeedSet {
		base = time.Now().UnixNano()
	}
	items := make([]WorkItem, r.cfg.Game.Games)
	for i := range items {
		items[i] = WorkItem{
			Index: i,
			Label: petname.Generate(2, "-"),
			Seed:  base + 2*int64(i),
		}
	}
	return items
}

// Run plays every game and returns the records ordered by game index.
// Failed games still produce a record; their errors are collected into a
// single multierror.
func (r *Runner) Run(ctx context.Context) ([]*output.GameRecord, error) {
	workers := r.cfg.Game.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > r.cfg.Game.Games {
		workers = r.cfg.Game.Games
	}

	settings := GameSettings{
		Depth:    r.cfg.Search.Depth,
		MaxPlies: r.cfg.Game.MaxPlies,
		StartFEN: r.cfg.Game.StartFEN,
		Verify:   r.cfg.Verify,
		Logger:   r.logger,
	}
	pool := NewPoolWithOptions(func(item WorkItem) ProcessResult {
		return PlayGame(ctx, item, settings)
	}, WithWorkers(workers), WithBufferSize(workers*2))
	pool.Start()

	items := r.Items()
	r.logger.Info().
		Int("games", len(items)).
		Int("workers", pool.NumWorkers()).
		Int("depth", settings.Depth).
		Msg("starting self-play")

	go func() {
		defer pool.Close()
		for _, item := range items {
			select {
			case <-ctx.Done():
				pool.Stop()
				return
			default:
				pool.Submit(item)
			}
		}
	}()

	var results []ProcessResult
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	var (
		records []*output.GameRecord
		errs    *multierror.Error
	)
	for _, res := range results {
		if res.Record != nil {
			records = append(records, res.Record)
		}
		if res.Error != nil {
			label := items[res.Index].Label
			errs = multierror.Append(errs, fmt.Errorf("game %d (%s): %w", res.Index+1, label, res.Error))
		}
	}
	if err := ctx.Err(); err != nil && len(results) < len(items) {
		errs = multierror.Append(errs, err)
	}
	return records, errs.ErrorOrNil()
}
