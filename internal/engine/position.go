// Package engine implements the chess rules: a position with a per-ply
// state stack and reversible move diffs, legal move generation, check,
// checkmate and draw detection, and incremental material scoring.
package engine

import (
	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/errors"
	"github.com/lgbarn/minimax-chess/internal/hashing"
)

// Position owns a board and the history of how it got there. It is not
// safe for concurrent use; give each goroutine its own Position.
type Position struct {
	board chess.Board
	kings [chess.NumColours]chess.Square
	hash  uint64

	// states[i] is the state after i plies; states[0] is the start.
	states []GameState
	// history[i] is the diff of ply i+1.
	history [][]Change
	reps    *hashing.RepetitionTable

	legal   []chess.Move
	pseudo  []chess.Move
	scratch [4]Change

	// FEN fullmove number of the starting position.
	firstMove int
}

// NewPosition creates a position at the standard starting setup with
// White to move and all castling rights.
func NewPosition() *Position {
	return newPosition(chess.NewInitialBoard(), chess.White, AllCastling, chess.NoSquare)
}

// newPosition builds the initial state for an arbitrary board.
func newPosition(board chess.Board, toMove chess.Colour, castling CastlingRights, ep chess.Square) *Position {
	p := &Position{
		board:     board,
		firstMove: 1,
		reps:      hashing.NewRepetitionTable(),
		states:    make([]GameState, 0, 64),
		history:   make([][]Change, 0, 64),
		legal:     make([]chess.Move, 0, 64),
		pseudo:    make([]chess.Move, 0, 128),
	}
	p.kings[chess.White] = board.Find(chess.W(chess.King))
	p.kings[chess.Black] = board.Find(chess.B(chess.King))
	p.hash = hashing.GenerateZobristHash(&p.board)

	material := materialOf(&p.board)
	p.states = append(p.states, GameState{
		SideToMove: toMove,
		EnPassant:  ep,
		Castling:   castling,
		Score:      material,
		Material:   material,
		Counters:   countPieces(&p.board),
		Hash:       p.hash,
	})
	p.reps.Add(p.hash)
	p.refresh()
	return p
}

// Clone returns an independent deep copy of the position, history included.
func (p *Position) Clone() *Position {
	c := *p
	c.states = append(make([]GameState, 0, cap(p.states)), p.states...)
	c.history = make([][]Change, len(p.history), cap(p.history))
	for i, h := range p.history {
		c.history[i] = append([]Change(nil), h...)
	}
	c.reps = p.reps.Clone()
	c.legal = append(make([]chess.Move, 0, cap(p.legal)), p.legal...)
	c.pseudo = make([]chess.Move, 0, cap(p.pseudo))
	return &c
}

// top returns the state of the current ply.
func (p *Position) top() *GameState {
	return &p.states[len(p.states)-1]
}

// State returns a copy of the current GameState.
func (p *Position) State() GameState {
	return *p.top()
}

// Board returns a copy of the current board.
func (p *Position) Board() chess.Board {
	return p.board
}

// BoardAt returns the board as it stood after ply moves, rebuilt by
// walking the diffs backwards from the latest ply.
func (p *Position) BoardAt(ply int) (chess.Board, error) {
	if ply < 0 || ply > p.TotalPlies() {
		return chess.Board{}, errors.Wrapf(errors.ErrPlyOutOfRange, "ply %d of %d", ply, p.TotalPlies())
	}
	b := p.board
	for i := len(p.history) - 1; i >= ply; i-- {
		changes := p.history[i]
		for j := len(changes) - 1; j >= 0; j-- {
			b.Set(changes[j].Square, changes[j].Before)
		}
	}
	return b, nil
}

// TotalPlies returns the number of moves applied since the start.
func (p *Position) TotalPlies() int {
	return len(p.history)
}

// SideToMove returns the colour to move.
func (p *Position) SideToMove() chess.Colour {
	return p.top().SideToMove
}

// IsWhiteToMove reports whether White is to move.
func (p *Position) IsWhiteToMove() bool {
	return p.top().SideToMove == chess.White
}

// Score returns the current evaluation: material while the game is alive,
// +/-MateScore after checkmate and 0 after a draw.
func (p *Position) Score() Score {
	return p.top().Score
}

// Hash returns the board hash of the current position.
func (p *Position) Hash() uint64 {
	return p.hash
}

// KingSquare returns the square of colour's king, or NoSquare.
func (p *Position) KingSquare(colour chess.Colour) chess.Square {
	return p.kings[colour]
}
