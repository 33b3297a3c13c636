/*
Package dna implements the rewrite interpreter: pattern and template
parsing, matching, splice planning, and the engine loop that drives a
rope.Rope to completion while streaming RNA fragments to a sink.
*/
package dna

import "github.com/shicks/endo/base"

// PatternKind tags the variant of a PatternItem (Go's substitute for
// the reference engine's tagged union).
type PatternKind int

const (
	PatBases PatternKind = iota
	PatSkip
	PatSearch
	PatOpenGroup
	PatCloseGroup
)

func (k PatternKind) String() string {
	switch k {
	case PatBases:
		return "Bases"
	case PatSkip:
		return "Skip"
	case PatSearch:
		return "Search"
	case PatOpenGroup:
		return "OpenGroup"
	case PatCloseGroup:
		return "CloseGroup"
	default:
		return "PatternKind(?)"
	}
}

// PatternItem is one instruction of a parsed pattern program. Bases
// carries the full base.Base (not just the symbol) so that, under
// source tracking, literal bases keep the provenance of the program
// text they were parsed from.
type PatternItem struct {
	Kind  PatternKind
	Bases []base.Base // Kind == PatBases or PatSearch
	N     int         // Kind == PatSkip
}

// TemplateKind tags the variant of a TemplateItem.
type TemplateKind int

const (
	TplBases TemplateKind = iota
	TplLen
	TplRef
)

func (k TemplateKind) String() string {
	switch k {
	case TplBases:
		return "Bases"
	case TplLen:
		return "Len"
	case TplRef:
		return "Ref"
	default:
		return "TemplateKind(?)"
	}
}

// TemplateItem is one instruction of a parsed template program. Level
// is a natural number (Kind == TplRef only); it is truncated to a byte
// at expansion time, mirroring the reference engine's cast.
type TemplateItem struct {
	Kind  TemplateKind
	Bases []base.Base // Kind == TplBases
	Group int         // Kind == TplLen or TplRef
	Level int         // Kind == TplRef
}

// AsUnprotectedGroup reports the captured group this item references
// directly (Ref at level 0), for splice-plan construction. ok is false
// for every other item, including a Ref at a nonzero level: a protected
// reference is a *new* sequence of bases, not an alias of the captured
// range, so it cannot anchor a splice point.
func (t TemplateItem) AsUnprotectedGroup() (group int, ok bool) {
	if t.Kind == TplRef && t.Level == 0 {
		return t.Group, true
	}
	return 0, false
}
