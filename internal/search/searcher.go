// Package search picks moves with a fixed-depth alpha-beta search over a
// game tree that persists between turns.
package search

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/errors"
)

// Stats describes the most recent call to ChooseMove.
type Stats struct {
	Depth      int
	Nodes      uint64 // positions visited
	Cutoffs    uint64
	Arena      int // live tree nodes after the search
	Best       float32
	Candidates int // root moves tied at the best score
}

// Searcher chooses moves for one side of a game. It owns a private
// position and mirrors the game through moves reported to it.
type Searcher struct {
	pos     *engine.Position
	tree    tree
	root    nodeID
	pending []chess.Move
	pass    uint32
	rng     *rand.Rand
	logger  zerolog.Logger
	stats   Stats
	last    []rootResult
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithRand sets the random source used to break ties between equal moves.
func WithRand(r *rand.Rand) Option {
	return func(s *Searcher) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed seeds a fresh random source for tie-breaking.
func WithSeed(seed int64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for per-search debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = l
	}
}

// New returns a Searcher rooted at pos. The searcher takes ownership of pos;
// callers keep their own copy (see engine.Position.Clone) for refereeing.
func New(pos *engine.Position, opts ...Option) *Searcher {
	s := &Searcher{
		pos:    pos,
		logger: zerolog.Nop(),
	}
	s.root = s.tree.alloc(chess.NoMove)
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// ReportOpponentMove queues a move played in the game. Both sides' moves
// must be reported, including the ones this searcher chose. The queue is
// replayed on the next ChooseMove.
func (s *Searcher) ReportOpponentMove(m chess.Move) {
	s.pending = append(s.pending, m)
}

// Position returns the searcher's position after the last replay.
func (s *Searcher) Position() *engine.Position {
	return s.pos
}

// Stats returns statistics for the last search.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// ChooseMove replays pending moves and searches depth plies ahead, returning
// one of the best root moves chosen at random.
func (s *Searcher) ChooseMove(depth int) (chess.Move, error) {
	if depth < 1 {
		return chess.NoMove, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", depth)
	}
	if err := s.replay(); err != nil {
		return chess.NoMove, err
	}
	if s.pos.IsTerminal() {
		return chess.NoMove, errors.Wrapf(errors.ErrNoLegalMoves, "%s", s.pos.Status())
	}

	s.pass++
	s.stats = Stats{Depth: depth}
	results := s.searchRoot(depth)
	s.last = results

	best := results[0].score
	for _, r := range results[1:] {
		if s.better(r.score, best) {
			best = r.score
		}
	}
	var candidates []nodeID
	for _, r := range results {
		if r.exact && roundScore(r.score) == roundScore(best) {
			candidates = append(candidates, r.id)
		}
	}
	if len(candidates) == 0 {
		errors.Invariant("no root move scored %v", best)
	}
	pick := candidates[s.rng.Intn(len(candidates))]

	s.stats.Arena = s.tree.live()
	s.stats.Best = best
	s.stats.Candidates = len(candidates)
	s.logger.Debug().
		Int("depth", depth).
		Uint64("nodes", s.stats.Nodes).
		Uint64("cutoffs", s.stats.Cutoffs).
		Int("arena", s.stats.Arena).
		Float32("best", best).
		Int("candidates", len(candidates)).
		Str("move", s.tree.nodes[pick].move.String()).
		Msg("search finished")

	return s.tree.nodes[pick].move, nil
}

// RootScores returns the root moves that received an exact score in the
// last search, in the order they were searched. Moves whose score was only
// bounded by the tie window are left out.
func (s *Searcher) RootScores() []MoveScore {
	var out []MoveScore
	for _, r := range s.last {
		if r.exact {
			out = append(out, MoveScore{Move: s.tree.nodes[r.id].move, Score: r.score})
		}
	}
	return out
}

// replay walks the tree down through the pending moves, applying each one
// to the private position. Moves left in the queue after a failure stay
// there.
func (s *Searcher) replay() error {
	for len(s.pending) > 0 {
		m := s.pending[0]
		s.expand(s.root)
		child := s.tree.childFor(s.root, m)
		if child == noNode {
			return &errors.MoveError{
				Err:  errors.ErrInconsistentReplay,
				Ply:  s.pos.TotalPlies() + 1,
				Move: m.String(),
			}
		}
		if err := s.pos.Do(m); err != nil {
			errors.Invariant("replaying tree edge %s: %v", m, err)
		}
		s.tree.advance(s.root, child)
		s.root = child
		s.last = nil
		s.pending = s.pending[1:]
	}
	return nil
}

// expand materialises the children of id from the current position, one
// per legal move and one per promotion choice.
func (s *Searcher) expand(id nodeID) {
	if s.tree.nodes[id].expanded {
		return
	}
	kids := s.tree.nodes[id].children[:0]
	for _, m := range s.pos.LegalMoves() {
		for _, mv := range s.pos.ExpandPromotions(m) {
			kids = append(kids, s.tree.alloc(mv))
		}
	}
	nd := &s.tree.nodes[id]
	nd.children = kids
	nd.expanded = true
}

func (s *Searcher) do(m chess.Move) {
	if err := s.pos.Do(m); err != nil {
		errors.Invariant("searching %s: %v", m, err)
	}
}

func (s *Searcher) undo() {
	if err := s.pos.UndoAction(); err != nil {
		errors.Invariant("undoing search move: %v", err)
	}
}

// better reports whether a beats b for the side to move.
func (s *Searcher) better(a, b float32) bool {
	if s.pos.IsWhiteToMove() {
		return a > b
	}
	return a < b
}
