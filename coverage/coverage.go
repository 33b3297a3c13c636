/*
Package coverage implements the optional source-tracking overlay: a
mapping from (address, escape-level) to usage statistics, populated
while the engine parses, matches, and splices. Every recording method
is a no-op on a nil Map, so the engine pays nothing for this overlay
when it runs over plain (untracked) bases.
*/
package coverage

import "github.com/shicks/endo/base"

// UsageTag is the closed enumeration of ways a tracked base can be
// consumed, recorded as the last usage seen for its (address, level).
type UsageTag int

const (
	PatBaseI UsageTag = iota
	PatBaseC
	PatBaseF
	PatBaseP
	PatSkip
	PatSearch
	PatOpen
	PatClose
	PatEnd
	TplLen
	TplRef
	TplEnd
	Num0
	Num1
	NumP
	SearchBaseI
	SearchBaseC
	SearchBaseF
	SearchBaseP
	RnaStart
	RnaBaseI
	RnaBaseC
	RnaBaseF
	RnaBaseP
)

func (t UsageTag) String() string {
	switch t {
	case PatBaseI:
		return "PatBase·I"
	case PatBaseC:
		return "PatBase·C"
	case PatBaseF:
		return "PatBase·F"
	case PatBaseP:
		return "PatBase·P"
	case PatSkip:
		return "PatSkip"
	case PatSearch:
		return "PatSearch"
	case PatOpen:
		return "PatOpen"
	case PatClose:
		return "PatClose"
	case PatEnd:
		return "PatEnd"
	case TplLen:
		return "TplLen"
	case TplRef:
		return "TplRef"
	case TplEnd:
		return "TplEnd"
	case Num0:
		return "Num0"
	case Num1:
		return "Num1"
	case NumP:
		return "NumP"
	case SearchBaseI:
		return "SearchBase·I"
	case SearchBaseC:
		return "SearchBase·C"
	case SearchBaseF:
		return "SearchBase·F"
	case SearchBaseP:
		return "SearchBase·P"
	case RnaStart:
		return "RnaStart"
	case RnaBaseI:
		return "RnaBase·I"
	case RnaBaseC:
		return "RnaBase·C"
	case RnaBaseF:
		return "RnaBase·F"
	case RnaBaseP:
		return "RnaBase·P"
	default:
		return "UsageTag(?)"
	}
}

// PatBaseTag and SearchBaseTag and RnaBaseTag map a raw symbol to the
// per-alphabet variant of the corresponding tag family.
func PatBaseTag(s base.Symbol) UsageTag    { return UsageTag(int(PatBaseI) + int(s)) }
func SearchBaseTag(s base.Symbol) UsageTag { return UsageTag(int(SearchBaseI) + int(s)) }
func RnaBaseTag(s base.Symbol) UsageTag    { return UsageTag(int(RnaBaseI) + int(s)) }

// Key identifies one (address, escape-level) pair in the original DNA.
type Key struct {
	Address int32
	Level   int8
}

// Entry is the usage record for one Key.
type Entry struct {
	FirstIter      int
	LastIter       int
	Count          int
	LastUsageTag   UsageTag
	SpliceBoundary bool
}

// Map is the coverage overlay. A nil Map disables tracking entirely:
// every method on it is then a no-op, so callers never need to branch
// on whether tracking is enabled.
type Map map[Key]*Entry

// New returns an empty, enabled coverage map.
func New() Map { return make(Map) }

func (m Map) entry(b base.Base, iter int) (*Entry, bool) {
	if m == nil || !b.HasSource() || b.Level() == base.SyntheticLevel {
		return nil, false
	}
	key := Key{Address: b.Address(), Level: b.Level()}
	e, ok := m[key]
	if !ok {
		e = &Entry{FirstIter: iter}
		m[key] = e
	}
	return e, true
}

// Record logs one use of b, tagged tag, at iteration iter. No-op when
// m is nil, b carries no provenance, or b sits at the sticky synthetic
// level (-32): synthetic bases have no original address to attribute
// usage to.
func (m Map) Record(b base.Base, tag UsageTag, iter int) {
	e, ok := m.entry(b, iter)
	if !ok {
		return
	}
	e.LastIter = iter
	e.Count++
	e.LastUsageTag = tag
}

// MarkSpliceBoundary flags b's (address, level) as sitting at the edge
// of a splice seam, subject to the same nil/synthetic skip as Record.
func (m Map) MarkSpliceBoundary(b base.Base, iter int) {
	e, ok := m.entry(b, iter)
	if !ok {
		return
	}
	e.SpliceBoundary = true
}
