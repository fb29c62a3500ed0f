package dawgtext

import "fmt"

// frame records one edge traversed while inserting the most recent word:
// the parent node, the label of the edge taken out of it, the child
// reached, and the cumulative depth (in bytes of the word) before that
// edge was followed.
type frame struct {
	parent      *node
	label       string
	child       *node
	depthBefore int
}

// Builder accumulates words into a trie and, on Pack, finishes collapsing
// it into a packed DAWG string. A Builder must not be reused after Pack.
type Builder struct {
	root *node

	last    string
	hasLast bool

	// lastPath is the edge-by-edge path of the most recently inserted
	// word, recomputed after every Insert. freeze uses it to find the
	// highest node that the next word provably can't share, and hands
	// that node to the canonicalizer — the streaming suffix-sharing this
	// package is named for.
	lastPath []frame

	// registry and nextID are the canonicalizer's signature table and id
	// counter; both are owner-scoped state, matching the teacher's
	// instance-scoped minimizedNodes/nextID, and are dropped once Pack
	// finishes.
	registry map[string]*node
	nextID   int

	// epoch backs the visit markers countDegree and collapseChains each
	// need; bumping it is cheaper than clearing a per-node flag between
	// passes.
	epoch int

	finished bool
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{
		root:     newNode(),
		registry: make(map[string]*node),
	}
}

// Insert adds word to the dictionary. Words may be inserted in any order;
// duplicates are silently dropped. Insert returns ErrInvalidInput if word
// contains a character outside the supported alphabet or one of the packed
// format's reserved characters. Insert panics if called after Pack.
func (b *Builder) Insert(word string) error {
	if b.finished {
		panic("dawgtext: Insert called on a Builder that has already been packed")
	}
	if err := validateWord(word); err != nil {
		return err
	}

	if b.hasLast {
		p := commonPrefixLen(word, b.last)
		b.freeze(p)
	}

	insertInto(b.root, word)

	b.lastPath = walkPath(b.root, word)
	b.last = word
	b.hasLast = true
	return nil
}

// InsertAll inserts every word in words, in order, stopping at the first
// invalid one.
func (b *Builder) InsertAll(words []string) error {
	for _, w := range words {
		if err := b.Insert(w); err != nil {
			return fmt.Errorf("dawgtext: InsertAll: %w", err)
		}
	}
	return nil
}

// insertInto descends from n, splitting edges and creating inline
// terminals as needed, until word is fully consumed (4.1).
func insertInto(n *node, word string) {
	for {
		if word == "" {
			n.terminal = true
			return
		}

		c := word[0]

		if i, ok := n.findEdge(c); ok {
			e := &n.edges[i]
			cp := commonPrefixLen(word, e.label)
			if cp == len(e.label) {
				// The edge's whole label matches; consume it and descend.
				// A child the canonicalizer has already frozen may be
				// shared with other paths, so descend into a private copy.
				if e.child.canonicalID != 0 {
					clone := *e.child
					clone.edges = append([]edge(nil), clone.edges...)
					clone.inline = append([]string(nil), clone.inline...)
					clone.canonicalID = 0
					e.child = &clone
				}
				word = word[cp:]
				n = e.child
				continue
			}

			// Strict common prefix: split the edge. The existing target
			// is unaffected as an object, only re-hung under the
			// remainder of its old label.
			mid := newNode()
			mid.edges = []edge{{label: e.label[cp:], child: e.child}}
			e.label = e.label[:cp]
			e.child = mid

			word = word[cp:]
			n = mid
			continue
		}

		if i, ok := n.findInline(c); ok {
			t := n.inline[i]
			if t == word {
				return // exact duplicate of an existing inline terminal
			}

			cp := commonPrefixLen(word, t)
			n.removeInlineAt(i)

			mid := newNode()
			if cp == len(t) {
				mid.terminal = true
			} else {
				attachTail(mid, t[cp:])
			}
			n.edges = append(n.edges, edge{label: word[:cp], child: mid})

			word = word[cp:]
			n = mid
			continue
		}

		// Neither an edge nor an inline terminal claims this first byte.
		attachTail(n, word)
		return
	}
}

// walkPath re-walks root along word's own path, which is guaranteed to
// exist right after inserting it, recording the edges traversed. Building
// this fresh off the tree (rather than threading it back out of
// insertInto) keeps insertInto focused purely on mutation.
func walkPath(root *node, word string) []frame {
	var path []frame
	n := root
	depth := 0
	for word != "" {
		i, ok := n.findEdge(word[0])
		if !ok {
			// word's tail landed as an inline terminal; nothing further
			// to record as a traversed edge.
			break
		}
		e := n.edges[i]
		path = append(path, frame{parent: n, label: e.label, child: e.child, depthBefore: depth})
		depth += len(e.label)
		word = word[len(e.label):]
		n = e.child
	}
	return path
}

// freeze canonicalizes whatever part of the previously inserted word's path
// the next word (sharing only a p-byte prefix with it) can no longer reach:
// the child of the first frame whose edge starts at or past the shared
// prefix. When the shared prefix ends inside an edge label, that edge's own
// child is not frozen here; optimize's final pass canonicalizes it.
func (b *Builder) freeze(p int) {
	b.debugFreeze(p)
	for _, f := range b.lastPath {
		if f.depthBefore >= p {
			canon := b.canonicalize(f.child)
			f.parent.replaceChild(f.label, canon)
			return
		}
	}
}

// replaceChild repoints the edge labeled exactly label to point at child.
func (n *node) replaceChild(label string, child *node) {
	for i := range n.edges {
		if n.edges[i].label == label {
			n.edges[i].child = child
			return
		}
	}
}

// optimize runs the graph optimizer (4.3): finish canonicalizing whatever
// the streaming freeze didn't reach (always at least the root and the last
// word's path, and more when input wasn't sorted), count in-degrees, then
// collapse singleton chains.
func (b *Builder) optimize() {
	b.root = b.canonicalize(b.root)
	b.countDegree(b.root)
	b.collapseChains(b.root)
}
