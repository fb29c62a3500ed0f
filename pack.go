package dawgtext

import "strings"

// Pack finishes construction and returns the packed string described in
// spec §6: a pre-order DFS numbering of the DAWG followed by a prefix-free,
// printable encoding of every node. Pack can only be called once; the
// Builder's trie and canonicalization registry are both released before it
// returns, per the resource model in §5.
func (b *Builder) Pack() (string, error) {
	if b.finished {
		panic("dawgtext: Pack called twice on the same Builder")
	}

	b.optimize()
	b.debugPackSummary()
	order := assignPreorder(b.root)

	var out strings.Builder
	for i, n := range order {
		if i > 0 {
			out.WriteByte(sepChar)
		}
		writeNode(&out, n, i)
	}

	b.finished = true
	b.root = nil
	b.registry = nil
	b.lastPath = nil

	return out.String(), nil
}

// assignPreorder numbers every reachable node so that, for every edge, the
// child's number is strictly greater than its parent's — even for edges
// that target an already-shared node reached through more than one parent
// (§6: "reference numbers are non-negative"). It does this by gating
// recursion into a node on having seen every one of its incoming edges:
// a shared node is only assigned a number, and only has its own edges
// walked, once the last reference to it has been visited. Since every edge
// in a DAWG built by suffix sharing consumes at least one input byte, the
// node reached by any edge always has a strictly shorter longest remaining
// suffix than its source, so this order always exists; gating on in-degree
// is what finds it without a separate topological sort pass.
func assignPreorder(root *node) []*node {
	remaining := countIncoming(root)
	var order []*node

	var visit func(n *node)
	visit = func(n *node) {
		n.preorder = len(order)
		order = append(order, n)
		for _, e := range n.sortEdges() {
			c := e.child
			remaining[c]--
			if remaining[c] == 0 {
				visit(c)
			}
		}
	}
	visit(root)
	return order
}

// countIncoming walks the whole graph once and returns, for every reachable
// node, how many edges target it. assignPreorder uses this single pass as
// its gate instead of recomputing a node's in-degree on every reference.
func countIncoming(root *node) map[*node]int {
	counts := make(map[*node]int)
	visited := make(map[*node]bool)
	var visit func(n *node)
	visit = func(n *node) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, e := range n.edges {
			counts[e.child]++
			visit(e.child)
		}
	}
	visit(root)
	return counts
}

// writeNode appends index's packed entries to out: the terminal marker if
// set, then inline terminals, then edges, each in lexicographic order of
// label (4.4).
func writeNode(out *strings.Builder, n *node, index int) {
	if n.terminal {
		out.WriteByte(termChar)
	}
	for _, t := range n.sortInline() {
		out.WriteString(t)
	}
	for _, e := range n.sortEdges() {
		out.WriteString(e.label)
		out.WriteByte(refChar)
		out.WriteString(encodeRef(e.child.preorder - index))
	}
}
