/*
Package dawgtext builds a compact, read-only dictionary from a set of
strings and serializes it to a single printable string that a small
decoder can walk directly to answer membership and lookup queries,
without ever reconstructing the dictionary in memory.

Construction happens in three stages:

  - A Builder accumulates words into a trie. As soon as a newly inserted
    word diverges from the previous one, the now-immutable branch is
    frozen and canonicalized into a directed acyclic word graph (DAWG):
    structurally identical subtrees collapse onto a single shared node.
  - Pack finishes any subtrees the streaming freeze didn't catch (at
    least the root and the last word's path, and more when words were
    not inserted in sorted order), computes
    in-degrees, collapses chains of singleton nodes into their parents,
    assigns every node a pre-order number, and emits the packed string.
  - A Dictionary parses a packed string on demand and answers IsWord and
    Lookup by walking nodes directly out of the string, with no
    intermediate tree.

Typical use:

	b := dawgtext.New()
	for _, w := range words {
		if err := b.Insert(w); err != nil {
			log.Fatal(err)
		}
	}
	packed, err := b.Pack()

	d, err := dawgtext.NewDictionary(packed)
	d.IsWord("cart") // true

Words may be inserted in any order; sorted input lets the streaming
freeze do more of the canonicalization work as it goes, but the final
Pack always finishes the job. A Builder cannot be reused after Pack.
Construction, packing and unpacking are all single-threaded; a
*Dictionary is safe to share across concurrent readers once built, since
it never mutates the packed string or its offset index.
*/
package dawgtext
