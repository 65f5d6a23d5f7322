package search

import (
	"sort"

	"github.com/chewxy/math32"
)

// tieWindow is how far below the best root score the root bound is kept,
// so that every move tying with the best after rounding is scored exactly.
const tieWindow = 0.1

// rootResult is the outcome of searching one root child. A score is exact
// when it landed strictly inside the window it was searched with.
type rootResult struct {
	id    nodeID
	score float32
	exact bool
}

func (s *Searcher) searchRoot(depth int) []rootResult {
	s.stats.Nodes++
	s.expand(s.root)

	maximizing := s.pos.IsWhiteToMove()
	alpha, beta := math32.Inf(-1), math32.Inf(1)
	children := s.tree.nodes[s.root].children
	results := make([]rootResult, 0, len(children))

	for _, c := range children {
		lo, hi := alpha, beta
		s.do(s.tree.nodes[c].move)
		score := s.alphaBeta(c, depth-1, lo, hi)
		s.undo()
		results = append(results, rootResult{id: c, score: score, exact: score > lo && score < hi})

		if maximizing {
			alpha = math32.Max(alpha, score-tieWindow)
		} else {
			beta = math32.Min(beta, score+tieWindow)
		}
	}

	s.order(s.root, maximizing)
	return results
}

// alphaBeta scores the node id, whose move has already been applied to the
// position. It is fail-soft: a result outside (alpha, beta) is a bound.
func (s *Searcher) alphaBeta(id nodeID, depth int, alpha, beta float32) float32 {
	s.stats.Nodes++
	if depth == 0 || s.pos.IsTerminal() {
		return s.record(id, float32(s.pos.Score()))
	}
	s.expand(id)

	maximizing := s.pos.IsWhiteToMove()
	best := math32.Inf(1)
	if maximizing {
		best = math32.Inf(-1)
	}

	for _, c := range s.tree.nodes[id].children {
		s.do(s.tree.nodes[c].move)
		score := s.alphaBeta(c, depth-1, alpha, beta)
		s.undo()

		if maximizing {
			best = math32.Max(best, score)
			alpha = math32.Max(alpha, best)
			if best >= beta {
				s.stats.Cutoffs++
				break
			}
		} else {
			best = math32.Min(best, score)
			beta = math32.Min(beta, best)
			if best <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
	}

	s.order(id, maximizing)
	return s.record(id, best)
}

func (s *Searcher) record(id nodeID, score float32) float32 {
	nd := &s.tree.nodes[id]
	nd.score = score
	nd.pass = s.pass
	return score
}

// order sorts the children of id best first for the side to move. Children
// not scored in this pass keep their relative order after the scored ones.
func (s *Searcher) order(id nodeID, maximizing bool) {
	nodes := s.tree.nodes
	kids := nodes[id].children
	sort.SliceStable(kids, func(i, j int) bool {
		a, b := nodes[kids[i]], nodes[kids[j]]
		fresh := a.pass == s.pass
		if fresh != (b.pass == s.pass) {
			return fresh
		}
		if !fresh {
			return false
		}
		if maximizing {
			return a.score > b.score
		}
		return a.score < b.score
	})
}

// roundScore rounds to one decimal place, halves upward, for tie
// comparisons.
func roundScore(x float32) float32 {
	return math32.Floor(x*10+0.5) / 10
}
