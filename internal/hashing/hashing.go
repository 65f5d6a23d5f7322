// Package hashing provides board hashing for repetition detection.
package hashing

import (
	"github.com/lgbarn/minimax-chess/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

// zobristKeys holds one random key per (square, colour, kind).
var zobristKeys [chess.BoardSize][chess.BoardSize][chess.NumColours][chess.NumKinds]uint64

func init() {
	state := uint64(zobristSeed)
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			for colour := 0; colour < chess.NumColours; colour++ {
				for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
					state = splitmix64(state)
					zobristKeys[file][rank][colour][kind] = state
				}
			}
		}
	}
}

// splitmix64 advances the generator state and returns the next key.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// PieceKey returns the key contributed by piece p standing on sq.
// Empty squares contribute zero, so a hash can be updated incrementally:
// h ^= PieceKey(sq, before) ^ PieceKey(sq, after).
func PieceKey(sq chess.Square, p chess.Piece) uint64 {
	if p.IsEmpty() || !sq.Valid() {
		return 0
	}
	return zobristKeys[sq.File][sq.Rank][p.Colour][p.Kind]
}

// GenerateZobristHash computes the hash of the board contents from scratch.
// Only piece placement is hashed; side to move and rights are not part of
// the key, so two positions repeat when their boards are identical.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			hash ^= PieceKey(sq, board.Get(sq))
		}
	}
	return hash
}

// RepetitionTable counts how many times each board hash has occurred in
// the current line of play.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[uint64]int),
	}
}

// Add records one more occurrence of hash and returns the new count.
func (r *RepetitionTable) Add(hash uint64) int {
	r.counts[hash]++
	return r.counts[hash]
}

// Remove forgets one occurrence of hash. Entries that reach zero are deleted.
func (r *RepetitionTable) Remove(hash uint64) {
	n := r.counts[hash]
	if n <= 1 {
		delete(r.counts, hash)
		return
	}
	r.counts[hash] = n - 1
}

// Count returns the number of recorded occurrences of hash.
func (r *RepetitionTable) Count(hash uint64) int {
	return r.counts[hash]
}

// Len returns the number of distinct hashes recorded.
func (r *RepetitionTable) Len() int {
	return len(r.counts)
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
}

// Clone returns an independent copy of the table.
func (r *RepetitionTable) Clone() *RepetitionTable {
	c := &RepetitionTable{counts: make(map[uint64]int, len(r.counts))}
	for h, n := range r.counts {
		c.counts[h] = n
	}
	return c
}
