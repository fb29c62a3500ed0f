package dawgtext

import (
	"log"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Debug turns on diagnostic tracing of construction and packing, off by
// default. The teacher leaves most of its trace points as commented-out
// log.Printf calls (dawg.go's Follow, IsFinal, AddChild, ReplaceChild) and
// keeps exactly one live, unconditional one on the out-of-order-insert
// path. This module gathers the same kind of trace behind a single flag
// instead of commenting code in and out by hand.
var Debug = false

// debugFreeze traces how much of the registry freeze has already
// canonicalized at the point a new word forces it to run.
func (b *Builder) debugFreeze(p int) {
	if !Debug {
		return
	}
	log.Printf("dawgtext: freeze(p=%d): registry holds %d canonical signatures", p, len(b.registry))
}

// debugCanonicalize traces whether a node's signature matched an existing
// canonical node or became a new one.
func debugCanonicalize(sig string, shared bool) {
	if !Debug {
		return
	}
	log.Printf("dawgtext: canonicalize signature=%q shared=%v", sig, shared)
}

// debugPackSummary traces the final registry contents right before Pack
// numbers and serializes the graph, sorted for reproducible log output.
func (b *Builder) debugPackSummary() {
	if !Debug {
		return
	}
	sigs := maps.Keys(b.registry)
	slices.Sort(sigs)
	log.Printf("dawgtext: Pack: %d canonical node shapes: %v", len(sigs), sigs)
}
