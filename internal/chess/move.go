package chess

import (
	"fmt"
	"strings"
)

// Move is a source/destination pair with an optional promotion choice.
// Promotion is NoKind unless the move promotes a pawn.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// NoMove is the zero-information move used for empty results.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move without a promotion choice.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// WithPromotion returns a copy of m carrying the given promotion choice.
func (m Move) WithPromotion(k Kind) Move {
	m.Promotion = k
	return m
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses a coordinate move such as "g1f3" or "a7a8n".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NoMove, fmt.Errorf("invalid move %q", text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q: %w", text, err)
	}
	m := NewMove(from, to)
	if len(text) == 5 {
		k := KindFromLetter(text[4])
		if !IsPromotionChoice(k) {
			return NoMove, fmt.Errorf("invalid promotion in move %q", text)
		}
		m.Promotion = k
	}
	return m, nil
}

// MustParseMove is like ParseMove but panics on error.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}
