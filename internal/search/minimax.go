package search

import (
	"github.com/chewxy/math32"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/errors"
)

// MoveScore pairs a root move with its search score.
type MoveScore struct {
	Move  chess.Move
	Score float32
}

// Minimax searches pos to depth without pruning and returns the best score
// together with the exact score of every root move, in legal move order.
// It is slow and meant for checking ChooseMove. pos is left unchanged.
func Minimax(pos *engine.Position, depth int) (float32, []MoveScore, error) {
	if depth < 1 {
		return 0, nil, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", depth)
	}
	if pos.IsTerminal() {
		return 0, nil, errors.Wrapf(errors.ErrNoLegalMoves, "%s", pos.Status())
	}

	p := pos.Clone()
	white := p.IsWhiteToMove()
	best := math32.Inf(1)
	if white {
		best = math32.Inf(-1)
	}

	var scores []MoveScore
	for _, m := range p.LegalMoves() {
		for _, mv := range p.ExpandPromotions(m) {
			if err := p.Do(mv); err != nil {
				return 0, nil, err
			}
			score := minimax(p, depth-1)
			if err := p.UndoAction(); err != nil {
				return 0, nil, err
			}
			scores = append(scores, MoveScore{Move: mv, Score: score})
			if white {
				best = math32.Max(best, score)
			} else {
				best = math32.Min(best, score)
			}
		}
	}
	return best, scores, nil
}

func minimax(p *engine.Position, depth int) float32 {
	if depth == 0 || p.IsTerminal() {
		return float32(p.Score())
	}

	white := p.IsWhiteToMove()
	best := math32.Inf(1)
	if white {
		best = math32.Inf(-1)
	}
	for _, m := range p.LegalMoves() {
		for _, mv := range p.ExpandPromotions(m) {
			if err := p.Do(mv); err != nil {
				errors.Invariant("minimax %s: %v", mv, err)
			}
			score := minimax(p, depth-1)
			if err := p.UndoAction(); err != nil {
				errors.Invariant("minimax undo: %v", err)
			}
			if white {
				best = math32.Max(best, score)
			} else {
				best = math32.Min(best, score)
			}
		}
	}
	return best
}

// BestMoves returns the moves in scores whose score matches best after
// rounding to one decimal.
func BestMoves(best float32, scores []MoveScore) []chess.Move {
	var out []chess.Move
	for _, ms := range scores {
		if roundScore(ms.Score) == roundScore(best) {
			out = append(out, ms.Move)
		}
	}
	return out
}
