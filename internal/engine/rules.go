package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// updateStatus sets the status, draw reason and score of gs from the
// freshly generated legal moves. Checkmate takes priority over the draw
// rules; stalemate over the other draws.
func (p *Position) updateStatus(gs *GameState) {
	gs.Status = Alive
	gs.DrawReason = NoDraw
	gs.Score = gs.Material

	switch {
	case len(p.legal) == 0 && p.inCheck(gs.SideToMove):
		gs.Status = Checkmate
		gs.Score = mateScoreFor(gs.SideToMove.Opposite())
		return
	case len(p.legal) == 0:
		gs.DrawReason = Stalemate
	case HasInsufficientMaterial(&gs.Counters):
		gs.DrawReason = InsufficientMaterial
	case gs.Repetition:
		gs.DrawReason = Repetition
	default:
		return
	}
	gs.Status = Draw
	gs.Score = 0
}

// HasInsufficientMaterial reports whether neither side can force mate.
// Any pawn, rook or queen is enough to play on. Otherwise the material is
// insufficient when there are no knights and every bishop stands on one
// square colour, or when a lone knight is the only minor piece.
func HasInsufficientMaterial(pc *PieceCounters) bool {
	if pc.Total(chess.Pawn) > 0 || pc.Total(chess.Rook) > 0 || pc.Total(chess.Queen) > 0 {
		return false
	}
	knights := pc.Total(chess.Knight)
	bishops := pc.Total(chess.Bishop)

	switch knights {
	case 0:
		return pc.BishopsOn(true) == 0 || pc.BishopsOn(false) == 0
	case 1:
		return bishops == 0
	}
	return false
}

// IsDraw reports whether the game has ended in a draw.
func (p *Position) IsDraw() bool {
	return p.top().Status == Draw
}

// IsCheckmate reports whether the side to move has been checkmated.
func (p *Position) IsCheckmate() bool {
	return p.top().Status == Checkmate
}

// IsTerminal reports whether the game is over.
func (p *Position) IsTerminal() bool {
	return p.top().IsTerminal()
}

// Status returns the status of the current ply.
func (p *Position) Status() Status {
	return p.top().Status
}

// DrawReason returns why the game was drawn, or NoDraw.
func (p *Position) DrawReason() DrawReason {
	return p.top().DrawReason
}
