package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// Score is a material evaluation in pawns. Positive favours White.
type Score float32

// MateScore is the magnitude reported for a checkmate, signed for the
// side that delivered it.
const MateScore Score = 1000

// pieceValues is indexed by chess.Kind. The king has no material value.
var pieceValues = [chess.NumKinds]Score{
	chess.NoKind: 0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// PieceValue returns the signed material value of p: positive for White,
// negative for Black and zero for Empty.
func PieceValue(p chess.Piece) Score {
	v := pieceValues[p.Kind]
	if p.Colour == chess.Black {
		return -v
	}
	return v
}

// materialOf sums the signed value of every piece on the board.
func materialOf(board *chess.Board) Score {
	var total Score
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			total += PieceValue(board.Get(chess.Sq(file, rank)))
		}
	}
	return total
}

// mateScoreFor returns the terminal score when winner has delivered mate.
func mateScoreFor(winner chess.Colour) Score {
	if winner == chess.White {
		return MateScore
	}
	return -MateScore
}
