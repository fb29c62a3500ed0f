package dawgtext

import (
	"fmt"
	"strings"
)

// valueSepChar separates a key from its encoded value in the augmented word
// InsertValue actually stores. It is drawn from the ordinary alphabet (not
// one of the packed format's reserved characters) and reserved by
// convention to this file alone: plain Insert callers simply never use it
// as the last character scheme, and InsertValue rejects it inside word.
var valueSepChar = alphabet[alphabetSize-1]

// InsertValue stores word paired with a non-negative integer value, per the
// value-bearing variant spec.md describes only the shape of (§4.5, §6). It
// composes with plain Insert and IsWord by encoding the pair as a single
// augmented key: word, the reserved separator, then value self-delimitingly
// encoded the same way a packed reference number is (encodeRef), so the
// boundary between the key and the value survives graph compaction without
// needing its own reserved character. Grounded on the teacher's
// FindResult{Word, Index} pattern of pairing a lookup with auxiliary data.
func (b *Builder) InsertValue(word string, value int) error {
	if err := validateWord(word); err != nil {
		return err
	}
	if strings.IndexByte(word, valueSepChar) >= 0 {
		return fmt.Errorf("%w: word %q cannot contain the reserved value separator %q", ErrInvalidInput, word, valueSepChar)
	}
	if value < 0 {
		return fmt.Errorf("%w: value must be non-negative, got %d", ErrInvalidInput, value)
	}
	return b.Insert(word + string(valueSepChar) + encodeRef(value))
}

// Lookup returns the value associated with word by InsertValue. It returns
// ErrNotFound if word was never stored with a value.
//
// word is only a prefix of the key actually stored (word plus the value
// tail), so unlike IsWord's walk, word can run out in the middle of an edge
// label rather than exactly at a node boundary — this happens whenever
// nothing else inserted through the builder shared word as a prefix, so no
// split ever separated word from its own tail. Lookup handles both cases:
// word consumed exactly at a node (look for an entry starting with
// valueSepChar there) or mid-label (the label's remainder must itself start
// with valueSepChar).
func (d *Dictionary) Lookup(word string) (int, error) {
	nodeIndex := 0
	remaining := word

	for remaining != "" {
		_, entries, err := d.parseNode(nodeIndex)
		if err != nil {
			return 0, err
		}

		matched := false
		for _, e := range entries {
			if !e.hasRef || e.label[0] != remaining[0] {
				continue
			}
			cp := commonPrefixLen(remaining, e.label)
			switch {
			case cp == len(e.label):
				// Whole label consumed; word may or may not be done too —
				// either way, continue at the child and let the top of the
				// loop (or the block below) decide.
				remaining = remaining[cp:]
				nodeIndex += e.distance
				matched = true
			case cp == len(remaining):
				// word ends inside this label: whatever follows must be
				// the value tail.
				rest := e.label[cp:]
				if rest[0] != valueSepChar {
					return 0, fmt.Errorf("%w: %q has no associated value", ErrNotFound, word)
				}
				tail, err := d.collectValueTail(parsedEntry{label: rest, hasRef: true, distance: e.distance}, nodeIndex)
				if err != nil {
					return 0, err
				}
				return decodeValueTail(tail, word)
			}
			break
		}
		if !matched {
			return 0, fmt.Errorf("%w: %q", ErrNotFound, word)
		}
	}

	_, entries, err := d.parseNode(nodeIndex)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if len(e.label) == 0 || e.label[0] != valueSepChar {
			continue
		}
		tail, err := d.collectValueTail(e, nodeIndex)
		if err != nil {
			return 0, err
		}
		return decodeValueTail(tail, word)
	}
	return 0, fmt.Errorf("%w: %q has no associated value", ErrNotFound, word)
}

// decodeValueTail decodes tail, which must begin with valueSepChar followed
// by exactly one self-delimiting reference number and nothing else.
func decodeValueTail(tail string, word string) (int, error) {
	value, next, err := decodeRef(tail, 1)
	if err != nil {
		return 0, err
	}
	if next != len(tail) {
		return 0, fmt.Errorf("%w: trailing bytes after value for %q", ErrMalformedPacked, word)
	}
	return value, nil
}

// collectValueTail follows e forward, concatenating labels, until it lands
// on a node with no further qualifying entry (an inline terminal, or an
// edge whose child has nothing more to offer).
func (d *Dictionary) collectValueTail(e parsedEntry, fromIndex int) (string, error) {
	buf := e.label
	if !e.hasRef {
		return buf, nil
	}

	index := fromIndex + e.distance
	for {
		_, entries, err := d.parseNode(index)
		if err != nil {
			return "", err
		}
		if len(entries) == 0 {
			return buf, nil
		}
		if len(entries) > 1 {
			return "", fmt.Errorf("%w: ambiguous value continuation at node %d", ErrMalformedPacked, index)
		}
		next := entries[0]
		buf += next.label
		if !next.hasRef {
			return buf, nil
		}
		index += next.distance
	}
}
