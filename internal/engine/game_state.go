package engine

import (
	"strings"

	"github.com/lgbarn/minimax-chess/internal/chess"
)

// Status is the game status after a ply.
type Status int

const (
	Alive Status = iota
	Draw
	Checkmate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Alive:
		return "alive"
	case Draw:
		return "draw"
	case Checkmate:
		return "checkmate"
	}
	return "unknown"
}

// DrawReason says which rule ended the game in a draw.
type DrawReason int

const (
	NoDraw DrawReason = iota
	Stalemate
	InsufficientMaterial
	Repetition
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	switch r {
	case NoDraw:
		return "none"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case Repetition:
		return "threefold repetition"
	}
	return "unknown"
}

// CastlingRights holds the four castling flags. Flags are only ever cleared.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Clear returns c with the flags in r removed.
func (c CastlingRights) Clear(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.Has(WhiteKingside) {
		sb.WriteByte('K')
	}
	if c.Has(WhiteQueenside) {
		sb.WriteByte('Q')
	}
	if c.Has(BlackKingside) {
		sb.WriteByte('k')
	}
	if c.Has(BlackQueenside) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// PieceCounters counts pieces per colour and kind, plus bishops per square
// colour so insufficient material can be judged without scanning the board.
type PieceCounters struct {
	Pieces  [chess.NumColours][chess.NumKinds]int8
	Bishops [chess.NumColours][2]int8 // [colour][0 dark, 1 light]
}

// Count returns the number of pieces of the given colour and kind.
func (pc *PieceCounters) Count(colour chess.Colour, kind chess.Kind) int {
	return int(pc.Pieces[colour][kind])
}

// Total returns the number of pieces of kind for both colours.
func (pc *PieceCounters) Total(kind chess.Kind) int {
	return int(pc.Pieces[chess.White][kind]) + int(pc.Pieces[chess.Black][kind])
}

// BishopsOn returns the number of bishops of both colours standing on
// light (light=true) or dark squares.
func (pc *PieceCounters) BishopsOn(light bool) int {
	i := 0
	if light {
		i = 1
	}
	return int(pc.Bishops[chess.White][i]) + int(pc.Bishops[chess.Black][i])
}

// update adds delta (+1 or -1) for piece p standing on sq.
func (pc *PieceCounters) update(sq chess.Square, p chess.Piece, delta int8) {
	if p.IsEmpty() {
		return
	}
	pc.Pieces[p.Colour][p.Kind] += delta
	if p.Kind == chess.Bishop {
		i := 0
		if sq.IsLight() {
			i = 1
		}
		pc.Bishops[p.Colour][i] += delta
	}
}

// countPieces builds counters for a whole board.
func countPieces(board *chess.Board) PieceCounters {
	var pc PieceCounters
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			pc.update(sq, board.Get(sq), 1)
		}
	}
	return pc
}

// GameState is the per-ply snapshot pushed by every applied move.
type GameState struct {
	// Side to move in this position.
	SideToMove chess.Colour

	// Square a pawn may capture into en passant, or NoSquare. Valid for
	// exactly one ply after a two-square pawn advance.
	EnPassant chess.Square

	// Remaining castling rights.
	Castling CastlingRights

	Status     Status
	DrawReason DrawReason

	// Cumulative material score, positive favours White. Forced to 0 on a
	// draw and to +/-MateScore on checkmate.
	Score Score

	// Material is the running material balance, kept even when Score is
	// overridden by a terminal status.
	Material Score

	Counters PieceCounters

	// Repetition is true when this board has now occurred a third time.
	Repetition bool

	// Hash of the board contents after the move.
	Hash uint64
}

// IsTerminal reports whether the game has ended.
func (gs *GameState) IsTerminal() bool {
	return gs.Status != Alive
}
