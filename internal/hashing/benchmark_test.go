package hashing

import (
	"testing"

	"github.com/lgbarn/minimax-chess/internal/chess"
)

func BenchmarkGenerateZobristHash(b *testing.B) {
	board := chess.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateZobristHash(&board)
	}
}

func BenchmarkRepetitionTable(b *testing.B) {
	table := NewRepetitionTable()
	for i := 0; i < b.N; i++ {
		h := uint64(i % 64)
		table.Add(h)
		table.Remove(h)
	}
}
