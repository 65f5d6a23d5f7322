package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// pseudoMoves appends the pseudo-legal moves of the piece on from to dst.
// Pseudo-legal moves obey piece movement but may leave the king attacked.
func (p *Position) pseudoMoves(dst []chess.Move, from chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return p.pawnMoves(dst, from, piece.Colour)
	case chess.Knight:
		return p.offsetMoves(dst, from, piece.Colour, knightOffsets[:])
	case chess.Bishop:
		return p.slidingMoves(dst, from, piece.Colour, diagonalDirs[:])
	case chess.Rook:
		return p.slidingMoves(dst, from, piece.Colour, straightDirs[:])
	case chess.Queen:
		dst = p.slidingMoves(dst, from, piece.Colour, diagonalDirs[:])
		return p.slidingMoves(dst, from, piece.Colour, straightDirs[:])
	case chess.King:
		dst = p.offsetMoves(dst, from, piece.Colour, kingOffsets[:])
		return p.castlingMoves(dst, from, piece.Colour)
	}
	return dst
}

// offsetMoves generates knight and king steps, clipped at the board edge.
func (p *Position) offsetMoves(dst []chess.Move, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if !to.Valid() {
			continue
		}
		target := p.board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			dst = append(dst, chess.NewMove(from, to))
		}
	}
	return dst
}

// slidingMoves walks each ray until it is blocked. An enemy blocker is a
// capture and is included; a friendly one is not.
func (p *Position) slidingMoves(dst []chess.Move, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, d := range dirs {
		for to := from.Offset(d[0], d[1]); to.Valid(); to = to.Offset(d[0], d[1]) {
			target := p.board.Get(to)
			if target.IsEmpty() {
				dst = append(dst, chess.NewMove(from, to))
				continue
			}
			if target.Colour != colour {
				dst = append(dst, chess.NewMove(from, to))
			}
			break
		}
	}
	return dst
}
