package search

import "github.com/lgbarn/minimax-chess/internal/chess"

// nodeID addresses a node in the arena.
type nodeID int32

const noNode nodeID = -1

type node struct {
	move     chess.Move // edge leading into this node
	children []nodeID
	expanded bool
	score    float32
	pass     uint32 // search pass that last computed score
}

// tree is an arena of nodes. Released nodes go on a free list and are
// handed out again by alloc, so long games do not keep growing the slice.
type tree struct {
	nodes    []node
	freelist []nodeID
}

func (t *tree) alloc(m chess.Move) nodeID {
	if l := len(t.freelist); l > 0 {
		id := t.freelist[l-1]
		t.freelist = t.freelist[:l-1]
		children := t.nodes[id].children[:0]
		t.nodes[id] = node{move: m, children: children}
		return id
	}
	t.nodes = append(t.nodes, node{move: m})
	return nodeID(len(t.nodes) - 1)
}

// release frees id and its whole subtree.
func (t *tree) release(id nodeID) {
	stack := []nodeID{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, t.nodes[n].children...)
		t.free(n)
	}
}

func (t *tree) free(id nodeID) {
	nd := &t.nodes[id]
	nd.children = nd.children[:0]
	nd.expanded = false
	nd.pass = 0
	nd.score = 0
	t.freelist = append(t.freelist, id)
}

// advance makes child the new root: every sibling subtree and the old root
// node itself are released.
func (t *tree) advance(root, child nodeID) {
	for _, c := range t.nodes[root].children {
		if c != child {
			t.release(c)
		}
	}
	t.free(root)
}

// live returns the number of nodes currently in use.
func (t *tree) live() int {
	return len(t.nodes) - len(t.freelist)
}

// childFor returns the child of id whose edge is m, or noNode.
func (t *tree) childFor(id nodeID, m chess.Move) nodeID {
	for _, c := range t.nodes[id].children {
		if t.nodes[c].move == m {
			return c
		}
	}
	return noNode
}
