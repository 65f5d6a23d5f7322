package output

import (
	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
)

// Game results in PGN form.
const (
	ResultWhiteWins  = "1-0"
	ResultBlackWins  = "0-1"
	ResultDraw       = "1/2-1/2"
	ResultUnfinished = "*"
)

// GameRecord is the outcome of one self-play game.
type GameRecord struct {
	Index    int         `json:"index"`
	Label    string      `json:"label"`
	Result   string      `json:"result"`
	Reason   string      `json:"reason,omitempty"`
	Plies    int         `json:"plies"`
	Score    float32     `json:"score"`
	StartFEN string      `json:"startFEN"`
	FinalFEN string      `json:"finalFEN"`
	Moves    []string    `json:"moves"`
	Error    string      `json:"error,omitempty"`
	Board    chess.Board `json:"-"`
}

// NewGameRecord summarises the game played on pos from startFEN.
func NewGameRecord(index int, label, startFEN string, pos *engine.Position, moves []chess.Move) *GameRecord {
	rec := &GameRecord{
		Index:    index,
		Label:    label,
		StartFEN: startFEN,
		FinalFEN: pos.FEN(),
		Plies:    pos.TotalPlies(),
		Score:    float32(pos.Score()),
		Board:    pos.Board(),
		Moves:    make([]string, len(moves)),
	}
	for i, m := range moves {
		rec.Moves[i] = m.String()
	}
	rec.Result, rec.Reason = Result(pos)
	return rec
}

// Result returns the PGN result of pos and a short reason.
func Result(pos *engine.Position) (result, reason string) {
	switch {
	case pos.IsCheckmate():
		if pos.SideToMove() == chess.White {
			return ResultBlackWins, "checkmate"
		}
		return ResultWhiteWins, "checkmate"
	case pos.IsDraw():
		return ResultDraw, pos.DrawReason().String()
	}
	return ResultUnfinished, ""
}
