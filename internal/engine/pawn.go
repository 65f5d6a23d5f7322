package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// homeRank returns the rank pawns of colour start on.
func homeRank(colour chess.Colour) int8 {
	if colour == chess.White {
		return 1
	}
	return 6
}

// lastRank returns the rank on which pawns of colour promote.
func lastRank(colour chess.Colour) int8 {
	if colour == chess.White {
		return 7
	}
	return 0
}

// pawnMoves generates single and double advances, diagonal captures and
// the en passant capture recorded by the previous ply. Promotions are
// emitted once, without a choice.
func (p *Position) pawnMoves(dst []chess.Move, from chess.Square, colour chess.Colour) []chess.Move {
	dir := colour.Forward()

	one := from.Offset(0, dir)
	if one.Valid() && p.board.Get(one).IsEmpty() {
		dst = append(dst, chess.NewMove(from, one))
		if from.Rank == homeRank(colour) {
			two := one.Offset(0, dir)
			if p.board.Get(two).IsEmpty() {
				dst = append(dst, chess.NewMove(from, two))
			}
		}
	}

	ep := p.top().EnPassant
	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		target := p.board.Get(to)
		switch {
		case !target.IsEmpty():
			if target.Colour != colour {
				dst = append(dst, chess.NewMove(from, to))
			}
		case to == ep && p.board.Get(chess.Square{File: to.File, Rank: from.Rank}).Is(colour.Opposite(), chess.Pawn):
			dst = append(dst, chess.NewMove(from, to))
		}
	}
	return dst
}

// isPawnDoublePush reports whether piece is a pawn advancing two squares.
func isPawnDoublePush(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.Pawn && from.File == to.File && abs(to.Rank-from.Rank) == 2
}

// isEnPassantCapture reports whether the pawn move from -> to captures en
// passant on target ep.
func isEnPassantCapture(board *chess.Board, piece chess.Piece, from, to, ep chess.Square) bool {
	return piece.Kind == chess.Pawn && to == ep && from.File != to.File && board.Get(to).IsEmpty()
}
