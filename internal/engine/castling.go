package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// Castling geometry, in files. The king always starts on the e-file.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// castlingMask[file][rank] holds the rights that survive any move touching
// that square: moving a king or rook off its home square, or capturing a
// rook on its corner, clears the matching flags.
var castlingMask [chess.BoardSize][chess.BoardSize]CastlingRights

func init() {
	for file := range castlingMask {
		for rank := range castlingMask[file] {
			castlingMask[file][rank] = AllCastling
		}
	}
	castlingMask[kingFile][0] = AllCastling.Clear(WhiteKingside | WhiteQueenside)
	castlingMask[kingsideRookFile][0] = AllCastling.Clear(WhiteKingside)
	castlingMask[queensideRookFile][0] = AllCastling.Clear(WhiteQueenside)
	castlingMask[kingFile][7] = AllCastling.Clear(BlackKingside | BlackQueenside)
	castlingMask[kingsideRookFile][7] = AllCastling.Clear(BlackKingside)
	castlingMask[queensideRookFile][7] = AllCastling.Clear(BlackQueenside)
}

// touchCastling returns rights after a move whose changes touched the
// given squares.
func touchCastling(rights CastlingRights, changes []Change) CastlingRights {
	for _, c := range changes {
		rights &= castlingMask[c.Square.File][c.Square.Rank]
	}
	return rights
}

// castlingFlags returns the kingside and queenside flags for colour.
func castlingFlags(colour chess.Colour) (kingside, queenside CastlingRights) {
	if colour == chess.White {
		return WhiteKingside, WhiteQueenside
	}
	return BlackKingside, BlackQueenside
}

// isCastling reports whether a king move from -> to is a castling move.
func isCastling(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.King && abs(to.File-from.File) == 2
}

// castlingRookSquares returns where the rook starts and ends for a castling
// king landing on kingTo.
func castlingRookSquares(kingTo chess.Square) (from, to chess.Square) {
	if kingTo.File > kingFile {
		return chess.Square{File: kingsideRookFile, Rank: kingTo.Rank}, chess.Square{File: kingTo.File - 1, Rank: kingTo.Rank}
	}
	return chess.Square{File: queensideRookFile, Rank: kingTo.Rank}, chess.Square{File: kingTo.File + 1, Rank: kingTo.Rank}
}

// castlingMoves appends castling moves for the king on from. The landing
// square is left to the regular legality filter; the square the king
// passes over is probed here.
func (p *Position) castlingMoves(dst []chess.Move, from chess.Square, colour chess.Colour) []chess.Move {
	backRank := lastRank(colour.Opposite())
	if from != chess.Sq(kingFile, int(backRank)) {
		return dst
	}
	rights := p.top().Castling
	kingside, queenside := castlingFlags(colour)
	if !rights.Has(kingside) && !rights.Has(queenside) {
		return dst
	}
	if p.inCheck(colour) {
		return dst
	}

	if rights.Has(kingside) && p.canCastle(from, colour, kingsideRookFile, 1) {
		dst = append(dst, chess.NewMove(from, from.Offset(2, 0)))
	}
	if rights.Has(queenside) && p.canCastle(from, colour, queensideRookFile, -1) {
		dst = append(dst, chess.NewMove(from, from.Offset(-2, 0)))
	}
	return dst
}

// canCastle checks the rook is on its corner, every square between king and
// rook is empty and the square the king crosses is not attacked.
func (p *Position) canCastle(king chess.Square, colour chess.Colour, rookFile int8, dir int) bool {
	corner := chess.Square{File: rookFile, Rank: king.Rank}
	if !p.board.Get(corner).Is(colour, chess.Rook) {
		return false
	}
	for s := king.Offset(dir, 0); s != corner; s = s.Offset(dir, 0) {
		if !p.board.Get(s).IsEmpty() {
			return false
		}
	}

	mid := king.Offset(dir, 0)
	step := [2]Change{
		{Square: king, Before: p.board.Get(king), After: chess.Empty},
		{Square: mid, Before: chess.Empty, After: p.board.Get(king)},
	}
	return p.probe(step[:], func() bool {
		return !p.inCheck(colour)
	})
}
