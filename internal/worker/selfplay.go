package worker

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/errors"
	"github.com/lgbarn/minimax-chess/internal/output"
	"github.com/lgbarn/minimax-chess/internal/search"
)

// GameSettings controls how a single self-play game is played.
type GameSettings struct {
	Depth    int
	MaxPlies int // 0 means play to the end
	StartFEN string
	Verify   bool // compare every search with exhaustive minimax
	Logger   zerolog.Logger
}

// PlayGame plays one game between two searchers, refereed by a third
// position. Each searcher only learns about moves through
// ReportOpponentMove. The record is returned even when the game stops
// on an error.
func PlayGame(ctx context.Context, item WorkItem, gs GameSettings) ProcessResult {
	res := ProcessResult{Index: item.Index}
	referee, err := engine.NewPositionFromFEN(gs.StartFEN)
	if err != nil {
		res.Error = err
		return res
	}

	logger := gs.Logger.With().Str("game", item.Label).Logger()
	var players [chess.NumColours]*search.Searcher
	players[chess.White] = search.New(referee.Clone(), search.WithSeed(item.Seed), search.WithLogger(logger))
	players[chess.Black] = search.New(referee.Clone(), search.WithSeed(item.Seed+1), search.WithLogger(logger))

	var moves []chess.Move
	for !referee.IsTerminal() && (gs.MaxPlies == 0 || len(moves) < gs.MaxPlies) {
		if err := ctx.Err(); err != nil {
			res.Error = err
			break
		}
		player := players[referee.SideToMove()]
		m, err := player.ChooseMove(gs.Depth)
		if err != nil {
			res.Error = err
			break
		}
		if gs.Verify {
			if err := verify(player, m, gs.Depth); err != nil {
				res.Error = err
				break
			}
		}
		if err := referee.Do(m); err != nil {
			res.Error = errors.Wrapf(err, "referee rejected searched move")
			break
		}
		for _, p := range players {
			p.ReportOpponentMove(m)
		}
		moves = append(moves, m)
	}

	res.Record = output.NewGameRecord(item.Index, item.Label, gs.StartFEN, referee, moves)
	if res.Error != nil {
		res.Record.Error = res.Error.Error()
	}
	logger.Info().
		Int("index", item.Index).
		Str("result", res.Record.Result).
		Str("reason", res.Record.Reason).
		Int("plies", res.Record.Plies).
		Err(res.Error).
		Msg("game finished")
	return res
}

// verify checks m and the score behind it against exhaustive minimax on
// the searcher's current position.
func verify(s *search.Searcher, m chess.Move, depth int) error {
	best, scores, err := search.Minimax(s.Position(), depth)
	if err != nil {
		return err
	}
	if got := s.Stats().Best; got != best {
		return &errors.MoveError{
			Err:  errors.Wrapf(errors.ErrSearchMismatch, "score %v, minimax %v", got, best),
			Ply:  s.Position().TotalPlies() + 1,
			Move: m.String(),
		}
	}
	for _, ok := range search.BestMoves(best, scores) {
		if ok == m {
			return nil
		}
	}
	return &errors.MoveError{
		Err:  errors.Wrapf(errors.ErrSearchMismatch, "move is not among the best at %v", best),
		Ply:  s.Position().TotalPlies() + 1,
		Move: m.String(),
	}
}
