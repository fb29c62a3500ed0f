package dawgtext

import (
	"fmt"
	"strings"
)

// Dictionary is a read-only view over a packed string, produced by
// Builder.Pack. It never mutates the string or its offset index once
// built, so a single *Dictionary is safe to share across concurrent
// readers (§5) — each query carries its own traversal position on the Go
// call stack, not in the Dictionary itself.
type Dictionary struct {
	packed  string
	offsets []int // offsets[i] is the byte offset where node i's entries begin
}

// NewDictionary parses packed's node-separator structure into an offset
// index. It validates that structure eagerly but defers checking that
// individual references point at real nodes to query time, keeping this
// constructor O(len(packed)) per §7.
func NewDictionary(packed string) (*Dictionary, error) {
	offsets := []int{0}
	for i := 0; i < len(packed); i++ {
		switch packed[i] {
		case sepChar:
			offsets = append(offsets, i+1)
		case termChar, refChar:
			// valid only inside a node's entries; no structural check
			// needed at this stage beyond recognizing separators.
		default:
			if !inAlphabet(packed[i]) {
				return nil, fmt.Errorf("%w: unsupported character %q at offset %d", ErrMalformedPacked, packed[i], i)
			}
		}
	}
	return &Dictionary{packed: packed, offsets: offsets}, nil
}

// parsedEntry is one inline terminal or edge read out of a node's entries.
type parsedEntry struct {
	label    string
	hasRef   bool
	distance int // child's preorder number minus this node's
}

// parseNode decodes node i's terminal flag and entries in order.
func (d *Dictionary) parseNode(i int) (terminal bool, entries []parsedEntry, err error) {
	if i < 0 || i >= len(d.offsets) {
		return false, nil, fmt.Errorf("%w: reference to nonexistent node %d", ErrMalformedPacked, i)
	}

	pos := d.offsets[i]
	if pos < len(d.packed) && d.packed[pos] == termChar {
		terminal = true
		pos++
	}

	for pos < len(d.packed) && d.packed[pos] != sepChar {
		start := pos
		for pos < len(d.packed) && inAlphabet(d.packed[pos]) {
			pos++
		}
		if pos == start {
			return false, nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrMalformedPacked, d.packed[pos], pos)
		}

		e := parsedEntry{label: d.packed[start:pos]}
		if pos < len(d.packed) && d.packed[pos] == refChar {
			pos++
			dist, next, derr := decodeRef(d.packed, pos)
			if derr != nil {
				return false, nil, derr
			}
			e.hasRef = true
			e.distance = dist
			pos = next
		}
		entries = append(entries, e)
	}

	return terminal, entries, nil
}

// IsWord reports whether word is a member of the dictionary (4.5).
func (d *Dictionary) IsWord(word string) (bool, error) {
	nodeIndex := 0
	remaining := word

	for {
		terminal, entries, err := d.parseNode(nodeIndex)
		if err != nil {
			return false, err
		}
		if remaining == "" {
			return terminal, nil
		}

		matched := false
		for _, e := range entries {
			if !e.hasRef {
				if e.label == remaining {
					return true, nil
				}
				continue
			}
			if strings.HasPrefix(remaining, e.label) {
				remaining = remaining[len(e.label):]
				nodeIndex += e.distance
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
}
