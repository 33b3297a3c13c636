package dna

import (
	"github.com/shicks/endo/base"
	"github.com/shicks/endo/coverage"
)

// RNAEvent is one emitted RNA fragment, with debug provenance filled
// in only when the engine is running over tracked bases. Origin is
// nil under plain bases (no provenance to report).
type RNAEvent struct {
	Fragment [7]base.Symbol
	Iter     int
	Origin   *coverage.Key
}

// RNASink receives each RNA fragment as the engine emits it, in order.
type RNASink interface {
	Emit(event RNAEvent)
}

// SliceSink is an in-memory RNASink that simply collects every event,
// useful for tests and for callers that want all RNA at once rather
// than streamed.
type SliceSink struct {
	Events []RNAEvent
}

func (s *SliceSink) Emit(event RNAEvent) {
	s.Events = append(s.Events, event)
}

// rnaEventFrom builds the RNAEvent for one captured fragment (from
// parseCtx.rna) at iteration iter.
func rnaEventFrom(frag []base.Base, iter int) RNAEvent {
	var ev RNAEvent
	ev.Iter = iter
	for i, b := range frag {
		if i < 7 {
			ev.Fragment[i] = b.Symbol()
		}
	}
	if len(frag) > 0 && frag[0].HasSource() {
		ev.Origin = &coverage.Key{Address: frag[0].Address(), Level: frag[0].Level()}
	}
	return ev
}
