package dna

import (
	"sort"
	"testing"

	"github.com/shicks/endo/base"
)

// fakeReader implements rangeReader over a plain in-memory slice.
type fakeReader []base.Base

func (f fakeReader) Slice(start, end int) []base.Base {
	return append([]base.Base(nil), f[start:end]...)
}

func TestSplicePlanIsNonOverlappingAndCovers(t *testing.T) {
	// Two Ref{level=0} candidates of different sizes inside [0, 20).
	items := []TemplateItem{
		{Kind: TplRef, Group: 0, Level: 0}, // range [2,5) len 3
		{Kind: TplBases, Bases: seqPlain("I")},
		{Kind: TplRef, Group: 1, Level: 0}, // range [10,18) len 8, the bigger one
	}
	env := &Env{Groups: [][2]int{{2, 5}, {10, 18}}}
	plan := findSplice(items, env, 0, 20)

	// Every entry's range must be non-overlapping and together with the
	// two candidate ranges must tile [0, 20) exactly.
	type rng struct{ lo, hi int }
	var ranges []rng
	for _, e := range plan {
		ranges = append(ranges, rng{e.start, e.start + e.len})
	}
	ranges = append(ranges, rng{2, 5}, rng{10, 18})
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].lo < ranges[j].lo })
	cursor := 0
	for _, r := range ranges {
		if r.lo != cursor {
			t.Fatalf("gap or overlap at %d in tiled ranges %+v", cursor, ranges)
		}
		cursor = r.hi
	}
	if cursor != 20 {
		t.Fatalf("ranges cover up to %d, want 20", cursor)
	}
}

func TestExpandTemplateLenAndRef(t *testing.T) {
	env := &Env{Groups: [][2]int{{1, 5}}} // captured range "CFPI", length 4
	src := fakeReader(seqPlain("ICFPICCP"))
	factory := base.PlainFactory{}

	items := []TemplateItem{
		{Kind: TplBases, Bases: seqPlain("II")},
		{Kind: TplLen, Group: 0},
		{Kind: TplRef, Group: 0, Level: 0},
	}
	got := expandTemplate(items, env, src, factory)
	// II + nat(4) ["I","I","C","P"? len 4 little-endian: 4=100b -> I,I,C,P] + CFPI
	wantPrefix := "II"
	if symString(got[:2]) != wantPrefix {
		t.Errorf("prefix = %q, want %q", symString(got[:2]), wantPrefix)
	}
	// naturalBases(4) = bits of 4 (100b): bit0=0->I, bit1=0->I, bit2=1->C, then P
	lenPart := got[2:6]
	if symString(lenPart) != "IICP" {
		t.Errorf("Len(4) expansion = %q, want IICP", symString(lenPart))
	}
	refPart := got[6:]
	if symString(refPart) != "CFPI" {
		t.Errorf("Ref expansion = %q, want CFPI (verbatim copy at level 0)", symString(refPart))
	}
}

func TestExpandTemplateInvalidLenFallsBackToP(t *testing.T) {
	env := &Env{}
	factory := base.PlainFactory{}
	items := []TemplateItem{{Kind: TplLen, Group: 5}}
	got := expandTemplate(items, env, fakeReader(nil), factory)
	if symString(got) != "P" {
		t.Errorf("invalid Len expansion = %q, want P", symString(got))
	}
}

func TestExpandTemplateInvalidRefIsDropped(t *testing.T) {
	env := &Env{}
	factory := base.PlainFactory{}
	items := []TemplateItem{{Kind: TplRef, Group: 5, Level: 0}}
	got := expandTemplate(items, env, fakeReader(nil), factory)
	if len(got) != 0 {
		t.Errorf("invalid Ref expansion = %v, want empty", got)
	}
}
