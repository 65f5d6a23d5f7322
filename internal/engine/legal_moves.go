package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// LegalMoves returns the legal moves of the side to move, one per
// source/destination pair. Promotion moves appear once with no choice set.
// The result is empty once the game is over. The slice is owned by the
// caller.
func (p *Position) LegalMoves() []chess.Move {
	if p.top().IsTerminal() {
		return nil
	}
	return append([]chess.Move(nil), p.legal...)
}

// NumLegalMoves returns len(LegalMoves()) without copying.
func (p *Position) NumLegalMoves() int {
	if p.top().IsTerminal() {
		return 0
	}
	return len(p.legal)
}

// IsLegal reports whether from -> to is in the current legal move set.
func (p *Position) IsLegal(from, to chess.Square) bool {
	if p.top().IsTerminal() {
		return false
	}
	for _, m := range p.legal {
		if m.From == from && m.To == to {
			return true
		}
	}
	return false
}

// IsPromotion reports whether from -> to moves a pawn of the side to move
// onto its last rank, so that DoAction needs a promotion choice.
func (p *Position) IsPromotion(from, to chess.Square) bool {
	piece := p.board.Get(from)
	return to.Valid() && piece.Is(p.top().SideToMove, chess.Pawn) && to.Rank == lastRank(piece.Colour)
}

// LegalDestinations returns the squares the piece on from can legally move to.
func (p *Position) LegalDestinations(from chess.Square) []chess.Square {
	if p.top().IsTerminal() {
		return nil
	}
	var out []chess.Square
	for _, m := range p.legal {
		if m.From == from {
			out = append(out, m.To)
		}
	}
	return out
}

// HasMoveFor reports whether the piece on sq has at least one legal move.
func (p *Position) HasMoveFor(sq chess.Square) bool {
	if p.top().IsTerminal() {
		return false
	}
	for _, m := range p.legal {
		if m.From == sq {
			return true
		}
	}
	return false
}

// refresh regenerates the legal moves of the current ply and recomputes
// its status.
func (p *Position) refresh() {
	p.legal = p.generateLegal(p.legal[:0])
	p.updateStatus(p.top())
}

// generateLegal appends every legal move of the side to move to dst. Each
// pseudo-legal candidate is played on the real board and reverted; the
// ones leaving the mover's king attacked are dropped.
func (p *Position) generateLegal(dst []chess.Move) []chess.Move {
	side := p.top().SideToMove
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			from := chess.Sq(file, rank)
			piece := p.board.Get(from)
			if piece.IsEmpty() || piece.Colour != side {
				continue
			}
			p.pseudo = p.pseudoMoves(p.pseudo[:0], from, piece)
			for _, m := range p.pseudo {
				if p.keepsKingSafe(m, side) {
					dst = append(dst, m)
				}
			}
		}
	}
	return dst
}

// keepsKingSafe reports whether playing m leaves side's king unattacked.
func (p *Position) keepsKingSafe(m chess.Move, side chess.Colour) bool {
	changes := p.buildChanges(p.scratch[:0], m)
	return p.probe(changes, func() bool {
		return !p.inCheck(side)
	})
}
