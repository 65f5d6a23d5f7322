package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/minimax-chess/internal/chess"
)

// Mover is anything that can play a move, such as an engine position.
type Mover interface {
	Do(m chess.Move) error
}

// ParseMoves parses a space separated list of coordinate moves such as
// "e2e4 e7e5 g1f3".
func ParseMoves(line string) ([]chess.Move, error) {
	fields := strings.Fields(line)
	moves := make([]chess.Move, 0, len(fields))
	for _, f := range fields {
		m, err := chess.ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// MustMoves is like ParseMoves but fails the test on a malformed move.
func MustMoves(t testing.TB, line string) []chess.Move {
	t.Helper()
	moves, err := ParseMoves(line)
	if err != nil {
		t.Fatalf("bad move list %q: %v", line, err)
	}
	return moves
}

// Play plays every move of line on m, failing the test at the first move
// that is rejected.
func Play(t testing.TB, m Mover, line string) {
	t.Helper()
	for i, mv := range MustMoves(t, line) {
		if err := m.Do(mv); err != nil {
			t.Fatalf("move %d (%s) of %q: %v", i+1, mv, line, err)
		}
	}
}
