package dawgtext

import (
	"strings"

	"golang.org/x/exp/slices"
)

// canonicalize returns a node structurally equivalent to n, possibly a
// previously canonicalized node shared with it (4.2). It sorts n's entries,
// repoints its edges at canonical children and records n in the registry;
// calling it on an already-canonical node just returns it unchanged.
func (b *Builder) canonicalize(n *node) *node {
	if n.canonicalID != 0 {
		return n
	}

	for i, e := range n.sortEdges() {
		n.edges[i].child = b.canonicalize(e.child)
	}
	n.sortInline()

	sig := signature(n)
	if existing, ok := b.registry[sig]; ok {
		debugCanonicalize(sig, true)
		return existing
	}

	b.nextID++
	n.canonicalID = b.nextID
	b.registry[sig] = n
	debugCanonicalize(sig, false)
	return n
}

// signature builds the string the registry keys on: a terminal marker, then
// every inline terminal and edge label in one combined lexicographic order,
// each edge suffixed with its (already-canonical) child's id. Two nodes
// with the same signature denote the same language and therefore the same
// node (data model invariant 3).
//
// Entries are joined with sepChar and an edge's label is separated from its
// child id with refChar — both reserved bytes that never appear inside a
// label, an inline terminal, or encodeNumber's output, all of which are
// drawn from the 64-symbol alphabet alone. That makes the join unambiguous:
// splitting buf back up on sepChar recovers exactly the entries that went
// in, in order, so no two structurally different entry lists can ever
// stringify to the same signature. Using an ordinary alphabet character
// (such as '_', which is alphabet's own last symbol) here would not have
// that property, since it can appear both inside a label and inside an
// encoded id, letting two different node shapes collide on one signature.
func signature(n *node) string {
	type entry struct {
		key  string
		text string
	}
	entries := make([]entry, 0, len(n.inline)+len(n.edges))
	for _, t := range n.inline {
		entries = append(entries, entry{key: t, text: t})
	}
	for _, e := range n.edges {
		entries = append(entries, entry{key: e.label, text: e.label + string(refChar) + encodeNumber(e.child.canonicalID)})
	}
	// Invariant 1 guarantees no inline terminal and edge label share a
	// first byte, so sorting by key alone totally orders the combined set.
	slices.SortFunc(entries, func(a, b entry) bool { return a.key < b.key })

	var buf strings.Builder
	if n.terminal {
		buf.WriteByte(termChar)
	}
	for _, e := range entries {
		buf.WriteByte(sepChar)
		buf.WriteString(e.text)
	}
	return buf.String()
}
