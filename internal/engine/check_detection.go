package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// Offset tables shared by move generation and attack detection.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.inCheck(p.top().SideToMove)
}

// inCheck reports whether colour's king is attacked on the current board.
func (p *Position) inCheck(colour chess.Colour) bool {
	king := p.kings[colour]
	if !king.Valid() {
		return false
	}
	return p.isAttacked(king, colour.Opposite())
}

// isAttacked returns true if sq is attacked by a piece of colour by.
// Along each ray only the first occupied square can attack.
func (p *Position) isAttacked(sq chess.Square, by chess.Colour) bool {
	b := &p.board

	// Pawns attack forward diagonally, so look one rank behind sq from
	// the attacker's point of view.
	back := -by.Forward()
	if b.Get(sq.Offset(-1, back)).Is(by, chess.Pawn) || b.Get(sq.Offset(1, back)).Is(by, chess.Pawn) {
		return true
	}

	for _, o := range knightOffsets {
		if b.Get(sq.Offset(o[0], o[1])).Is(by, chess.Knight) {
			return true
		}
	}

	for _, o := range kingOffsets {
		if b.Get(sq.Offset(o[0], o[1])).Is(by, chess.King) {
			return true
		}
	}

	if p.rayAttack(sq, by, diagonalDirs[:], chess.Bishop) {
		return true
	}
	return p.rayAttack(sq, by, straightDirs[:], chess.Rook)
}

// rayAttack walks each direction from sq and reports whether the first
// piece met is an enemy slider of kind or a queen.
func (p *Position) rayAttack(sq chess.Square, by chess.Colour, dirs [][2]int, kind chess.Kind) bool {
	for _, d := range dirs {
		for s := sq.Offset(d[0], d[1]); s.Valid(); s = s.Offset(d[0], d[1]) {
			piece := p.board.Get(s)
			if piece.IsEmpty() {
				continue
			}
			if piece.Is(by, kind) || piece.Is(by, chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}
