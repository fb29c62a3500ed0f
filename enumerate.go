package dawgtext

// EnumFn is called once per node reached during an Enumerate walk, with the
// word built so far and whether this node is itself terminal, and once per
// inline terminal, with final set to true.
type EnumFn = func(word string, final bool) EnumerationResult

// EnumerationResult tells Enumerate what to do after an EnumFn call.
type EnumerationResult = int

const (
	// Continue descends into this node's children.
	Continue EnumerationResult = iota
	// Skip moves on without descending into this node's children.
	Skip
	// Stop ends the walk immediately.
	Stop
)

// Enumerate walks every word stored in the dictionary depth-first in packed
// entry order (at each node, inline terminals before edges), calling fn at
// each node along the way. Not part of spec.md's core;
// kept in the teacher's Enumerate/EnumFn/Continue-Skip-Stop idiom as a
// bonus traversal layered over the unpacker, since nothing about walking
// the packed representation this way requires anything the core doesn't
// already build.
func (d *Dictionary) Enumerate(fn EnumFn) {
	d.enumerate(0, "", fn)
}

func (d *Dictionary) enumerate(nodeIndex int, word string, fn EnumFn) EnumerationResult {
	terminal, entries, err := d.parseNode(nodeIndex)
	if err != nil {
		return Stop
	}

	result := fn(word, terminal)
	if result != Continue {
		return result
	}

	for _, e := range entries {
		if !e.hasRef {
			if fn(word+e.label, true) == Stop {
				return Stop
			}
			continue
		}
		if r := d.enumerate(nodeIndex+e.distance, word+e.label, fn); r == Stop {
			return Stop
		}
	}
	return Continue
}
