package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each promotion counts once per promotion choice. Draw rules are ignored
// so the counts match the usual reference tables.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := append([]chess.Move(nil), p.legal...)

	var nodes uint64
	for _, m := range moves {
		for _, mv := range p.ExpandPromotions(m) {
			if depth == 1 {
				nodes++
				continue
			}
			p.apply(mv)
			nodes += p.Perft(depth - 1)
			p.undo()
		}
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move, keyed by
// the move in coordinate form.
func (p *Position) PerftDivide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	moves := append([]chess.Move(nil), p.legal...)
	for _, m := range moves {
		for _, mv := range p.ExpandPromotions(m) {
			p.apply(mv)
			out[mv.String()] = p.Perft(depth - 1)
			p.undo()
		}
	}
	return out
}

// ExpandPromotions returns m once per promotion choice when it promotes a
// pawn, in PromotionChoices order, and m unchanged otherwise.
func (p *Position) ExpandPromotions(m chess.Move) []chess.Move {
	if !p.IsPromotion(m.From, m.To) {
		return []chess.Move{m}
	}
	out := make([]chess.Move, 0, len(chess.PromotionChoices))
	for _, k := range chess.PromotionChoices {
		out = append(out, m.WithPromotion(k))
	}
	return out
}
