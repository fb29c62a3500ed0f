package dawgtext

import (
	"golang.org/x/exp/slices"
)

// edge is one outgoing transition: label must be non-empty and, together
// with every other edge label and inline terminal of the same node, pairwise
// prefix-free on its first byte (data model invariant 1).
type edge struct {
	label string
	child *node
}

// node denotes the set of string suffixes reachable from it. It moves
// through three lifecycle stages: mutable while the builder inserts words,
// frozen with a canonicalID once the canonicalizer has seen it, and finally
// given a preorder number by the packer. canonicalID is zero ("unset") until
// the canonicalizer assigns it; preorder 0 is a valid number for the root,
// so newNode starts preorder at unsetPreorder instead.
type node struct {
	terminal bool
	edges    []edge
	inline   []string

	canonicalID int // 0 means "not yet canonicalized"

	inDegree int
	preorder int

	// visitEpoch lets countDegree and collapseChains each use a single
	// monotonically increasing counter on the owner instead of clearing a
	// visited flag between passes.
	visitEpoch int
}

const unsetPreorder = -1

func newNode() *node {
	return &node{preorder: unsetPreorder}
}

func (n *node) isSingleton() bool {
	return len(n.edges) == 1 && !n.terminal && len(n.inline) == 0
}

// findEdge returns the index of the edge whose label begins with c, if any.
func (n *node) findEdge(c byte) (int, bool) {
	for i := range n.edges {
		if n.edges[i].label[0] == c {
			return i, true
		}
	}
	return 0, false
}

// findInline returns the index of the inline terminal beginning with c, if
// any.
func (n *node) findInline(c byte) (int, bool) {
	for i := range n.inline {
		if n.inline[i][0] == c {
			return i, true
		}
	}
	return 0, false
}

func (n *node) removeInlineAt(i int) string {
	t := n.inline[i]
	n.inline = append(n.inline[:i], n.inline[i+1:]...)
	return t
}

// sortEdges orders n's edges lexicographically by label in place and
// returns them, so every consumer (signature building, pre-order
// numbering, node serialization) agrees on a single deterministic order.
func (n *node) sortEdges() []edge {
	slices.SortFunc(n.edges, func(a, b edge) bool { return a.label < b.label })
	return n.edges
}

func (n *node) sortInline() []string {
	slices.Sort(n.inline)
	return n.inline
}

// attachTail installs tail as either an inline terminal (length <= 1) or a
// fresh terminal child reached by a single edge labeled with the whole
// remaining string, per the trie builder's "no matching edge" rule (4.1).
func attachTail(n *node, tail string) {
	if len(tail) <= 1 {
		n.inline = append(n.inline, tail)
		return
	}
	n.edges = append(n.edges, edge{label: tail, child: &node{terminal: true, preorder: unsetPreorder}})
}
