package chess

import "strings"

// Board is the 8x8 grid of square contents, indexed [file][rank].
// It is a value type: assignment copies the whole grid.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() Board {
	var b Board
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][0] = W(backRank[file])
		b.Squares[file][1] = W(Pawn)
		b.Squares[file][6] = B(Pawn)
		b.Squares[file][7] = B(backRank[file])
	}
}

// Get returns the piece at the given square. Off-board squares read as Empty.
func (b *Board) Get(s Square) Piece {
	if !s.Valid() {
		return Empty
	}
	return b.Squares[s.File][s.Rank]
}

// Set places a piece at the given square. Off-board squares are ignored.
func (b *Board) Set(s Square, p Piece) {
	if s.Valid() {
		b.Squares[s.File][s.Rank] = p
	}
}

// Find returns the first square holding p, scanning a1..h8 file-major,
// or NoSquare.
func (b *Board) Find(p Piece) Square {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank] == p {
				return Sq(file, rank)
			}
		}
	}
	return NoSquare
}

// String draws the board with rank 8 at the top, one row per rank.
func (b Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Squares[file][rank].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
