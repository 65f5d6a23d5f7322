package worker

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/config"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/errors"
	"github.com/lgbarn/minimax-chess/internal/output"
)

func settings(fen string, depth, maxPlies int) GameSettings {
	return GameSettings{
		Depth:    depth,
		MaxPlies: maxPlies,
		StartFEN: fen,
		Logger:   zerolog.Nop(),
	}
}

func mustMove(t *testing.T, s string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(s)
	require.NoError(t, err)
	return m
}

func TestPlayGameToMate(t *testing.T) {
	item := WorkItem{Index: 3, Label: "quick-mate", Seed: 1}
	res := PlayGame(context.Background(), item, settings("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 2, 0))

	require.NoError(t, res.Error)
	require.NotNil(t, res.Record)
	assert.Equal(t, 3, res.Index)
	assert.Equal(t, "quick-mate", res.Record.Label)
	assert.Equal(t, output.ResultWhiteWins, res.Record.Result)
	assert.Equal(t, "checkmate", res.Record.Reason)
	assert.Equal(t, []string{"a1a8"}, res.Record.Moves)
}

func TestPlayGameMaxPliesWithVerify(t *testing.T) {
	gs := settings(engine.InitialFEN, 2, 6)
	gs.Verify = true
	res := PlayGame(context.Background(), WorkItem{Label: "short", Seed: 9}, gs)

	require.NoError(t, res.Error)
	assert.Equal(t, 6, res.Record.Plies)
	assert.Len(t, res.Record.Moves, 6)
	assert.Equal(t, output.ResultUnfinished, res.Record.Result)

	// The record replays on a fresh position.
	pos := engine.NewPosition()
	for _, mv := range res.Record.Moves {
		require.NoError(t, pos.Do(mustMove(t, mv)))
	}
	assert.Equal(t, res.Record.FinalFEN, pos.FEN())
}

func TestPlayGameErrors(t *testing.T) {
	res := PlayGame(context.Background(), WorkItem{}, settings("bogus", 1, 0))
	assert.True(t, errors.Is(res.Error, errors.ErrInvalidFEN))
	assert.Nil(t, res.Record)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res = PlayGame(ctx, WorkItem{Label: "cancelled"}, settings(engine.InitialFEN, 1, 0))
	assert.True(t, errors.Is(res.Error, context.Canceled))
	require.NotNil(t, res.Record)
	assert.Equal(t, 0, res.Record.Plies)
	assert.Contains(t, res.Record.Error, "canceled")
}

func TestRunner(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithDepth(1).
		WithSeed(5).
		WithGames(4).
		WithWorkers(2).
		WithMaxPlies(10).
		Build()
	require.NoError(t, cfg.Validate())

	run := func() []*output.GameRecord {
		records, err := NewRunner(cfg, zerolog.Nop()).Run(context.Background())
		require.NoError(t, err)
		return records
	}

	first := run()
	require.Len(t, first, 4)
	for i, rec := range first {
		assert.Equal(t, i, rec.Index)
		assert.NotEmpty(t, rec.Label)
		assert.LessOrEqual(t, rec.Plies, 10)
	}

	// A fixed seed replays the same games.
	second := run()
	for i := range first {
		assert.Equal(t, first[i].Moves, second[i].Moves, "game %d", i)
	}
}

func TestRunnerCancelled(t *testing.T) {
	cfg := config.NewConfigBuilder().WithDepth(1).WithGames(3).WithWorkers(1).Build()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(cfg, zerolog.Nop()).Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunnerItems(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSeed(100).WithGames(3).Build()
	items := NewRunner(cfg, zerolog.Nop()).Items()

	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, int64(100+2*i), item.Seed)
		assert.NotEmpty(t, item.Label)
	}
}
