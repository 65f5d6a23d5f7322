package engine

import (
	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/errors"
	"github.com/lgbarn/minimax-chess/internal/hashing"
)

// Change records one square's content before and after a move. A move is
// applied by writing After in order and undone by writing Before in
// reverse order.
type Change struct {
	Square chess.Square
	Before chess.Piece
	After  chess.Piece
}

// DoAction plays the move from -> to for the side to move. promotion must
// be one of Queen, Rook, Knight or Bishop when the move promotes a pawn,
// and NoKind otherwise.
func (p *Position) DoAction(from, to chess.Square, promotion chess.Kind) error {
	m := chess.Move{From: from, To: to, Promotion: promotion}
	if err := p.validate(m); err != nil {
		return &errors.MoveError{Err: err, Ply: p.TotalPlies() + 1, Move: m.String()}
	}
	p.apply(m)
	return nil
}

// Do is DoAction for a Move value.
func (p *Position) Do(m chess.Move) error {
	return p.DoAction(m.From, m.To, m.Promotion)
}

// UndoAction takes back the last move, restoring the board and every state
// field exactly.
func (p *Position) UndoAction() error {
	if len(p.history) == 0 {
		return errors.ErrEmptyHistory
	}
	p.undo()
	return nil
}

// validate checks m against the legal move set of the current ply.
func (p *Position) validate(m chess.Move) error {
	if p.top().IsTerminal() {
		return errors.ErrGameOver
	}
	if !p.IsLegal(m.From, m.To) {
		return errors.ErrInvalidMove
	}
	if p.IsPromotion(m.From, m.To) {
		if m.Promotion == chess.NoKind {
			return errors.ErrPromotionChoiceMissing
		}
		if !chess.IsPromotionChoice(m.Promotion) {
			return errors.ErrInvalidMove
		}
	} else if m.Promotion != chess.NoKind {
		return errors.ErrInvalidMove
	}
	return nil
}

// apply plays a move already known to be legal. It does not check the
// game status, so perft can walk through drawn positions.
func (p *Position) apply(m chess.Move) {
	prev := p.top()
	next := *prev
	next.SideToMove = prev.SideToMove.Opposite()
	next.EnPassant = chess.NoSquare
	next.Status = Alive
	next.DrawReason = NoDraw
	next.Repetition = false

	piece := p.board.Get(m.From)
	if isPawnDoublePush(piece, m.From, m.To) {
		next.EnPassant = chess.Square{File: m.From.File, Rank: (m.From.Rank + m.To.Rank) / 2}
	}

	changes := p.buildChanges(p.nextDiff(), m)
	for _, c := range changes {
		p.set(c.Square, c.After)
		next.Material += PieceValue(c.After) - PieceValue(c.Before)
		next.Counters.update(c.Square, c.Before, -1)
		next.Counters.update(c.Square, c.After, 1)
	}
	next.Castling = touchCastling(prev.Castling, changes)
	next.Hash = p.hash
	next.Repetition = p.reps.Add(p.hash) >= 3

	p.history = append(p.history, changes)
	p.states = append(p.states, next)
	p.refresh()
}

// undo pops the last ply. The caller guarantees history is not empty.
func (p *Position) undo() {
	n := len(p.history)
	if n == 0 || len(p.states) != n+1 {
		errors.Invariant("undo with %d diffs and %d states", n, len(p.states))
	}
	p.reps.Remove(p.hash)

	changes := p.history[n-1]
	for i := len(changes) - 1; i >= 0; i-- {
		p.set(changes[i].Square, changes[i].Before)
	}
	p.history = p.history[:n-1]
	p.states = p.states[:n]
	if p.hash != p.top().Hash {
		errors.Invariant("hash mismatch after undo at ply %d", n-1)
	}
	p.refresh()
}

// nextDiff returns an empty change buffer for the next ply, reusing the
// backing array left by an earlier undo when there is one.
func (p *Position) nextDiff() []Change {
	n := len(p.history)
	if n < cap(p.history) {
		if old := p.history[:n+1][n]; old != nil {
			return old[:0]
		}
	}
	return make([]Change, 0, 4)
}

// buildChanges appends the square updates for m to dst. A promotion move
// without a choice is built as a queen promotion; the choice does not
// affect legality.
func (p *Position) buildChanges(dst []Change, m chess.Move) []Change {
	piece := p.board.Get(m.From)
	captured := p.board.Get(m.To)

	switch {
	case isEnPassantCapture(&p.board, piece, m.From, m.To, p.top().EnPassant):
		victim := chess.Square{File: m.To.File, Rank: m.From.Rank}
		return append(dst,
			Change{Square: m.From, Before: piece, After: chess.Empty},
			Change{Square: victim, Before: p.board.Get(victim), After: chess.Empty},
			Change{Square: m.To, Before: chess.Empty, After: piece},
		)

	case isCastling(piece, m.From, m.To):
		rookFrom, rookTo := castlingRookSquares(m.To)
		rook := p.board.Get(rookFrom)
		return append(dst,
			Change{Square: m.From, Before: piece, After: chess.Empty},
			Change{Square: rookFrom, Before: rook, After: chess.Empty},
			Change{Square: m.To, Before: chess.Empty, After: piece},
			Change{Square: rookTo, Before: chess.Empty, After: rook},
		)
	}

	after := piece
	if piece.Kind == chess.Pawn && m.To.Rank == lastRank(piece.Colour) {
		promo := m.Promotion
		if promo == chess.NoKind {
			promo = chess.Queen
		}
		after = chess.MakePiece(piece.Colour, promo)
	}
	return append(dst,
		Change{Square: m.From, Before: piece, After: chess.Empty},
		Change{Square: m.To, Before: captured, After: after},
	)
}

// set writes one square and keeps the hash and king squares in step.
func (p *Position) set(sq chess.Square, piece chess.Piece) {
	old := p.board.Get(sq)
	p.hash ^= hashing.PieceKey(sq, old) ^ hashing.PieceKey(sq, piece)
	p.board.Set(sq, piece)
	if piece.Kind == chess.King {
		p.kings[piece.Colour] = sq
	} else if old.Kind == chess.King && p.kings[old.Colour] == sq {
		p.kings[old.Colour] = chess.NoSquare
	}
}

// probe applies changes, runs fn and restores the board on every exit path.
func (p *Position) probe(changes []Change, fn func() bool) bool {
	for _, c := range changes {
		p.set(c.Square, c.After)
	}
	defer func() {
		for i := len(changes) - 1; i >= 0; i-- {
			p.set(changes[i].Square, changes[i].Before)
		}
	}()
	return fn()
}
