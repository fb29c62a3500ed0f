package dawgtext

// countDegree walks the DAWG once, setting each reachable node's inDegree
// to the number of edges that target it (4.3 step 2); the root, which no
// edge targets, gets 1. It uses a fresh
// epoch rather than a per-node visited bool that would need clearing.
func (b *Builder) countDegree(root *node) {
	b.epoch++
	epoch := b.epoch

	var visit func(n *node)
	visit = func(n *node) {
		if n.visitEpoch == epoch {
			n.inDegree++
			return
		}
		n.visitEpoch = epoch
		n.inDegree = 1
		for _, e := range n.edges {
			visit(e.child)
		}
	}
	visit(root)
}

// collapseChains fuses singleton children into their parent's edge label
// wherever that's safe (4.3 step 3): a node with exactly one edge, no
// terminal flag and no inline terminals whose in-degree is 1, or whose
// single label is one character, is never addressed by any other edge that
// matters, so its parent can skip straight past it. The fuse loop lets a
// whole chain of such nodes collapse into a single edge in one pass.
func (b *Builder) collapseChains(root *node) {
	b.epoch++
	epoch := b.epoch

	var visit func(n *node)
	visit = func(n *node) {
		if n.visitEpoch == epoch {
			return
		}
		n.visitEpoch = epoch

		for i := range n.edges {
			visit(n.edges[i].child) // post-order: child finishes collapsing first

			for {
				child := n.edges[i].child
				if !child.isSingleton() {
					break
				}
				singleEdge := child.edges[0]
				if !(child.inDegree == 1 || len(singleEdge.label) == 1) {
					break
				}
				n.edges[i].label += singleEdge.label
				n.edges[i].child = singleEdge.child
			}
		}
	}
	visit(root)
}
