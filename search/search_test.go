package search

import (
	"math/rand"
	"testing"

	"github.com/shicks/endo/base"
)

// sliceHaystack adapts a plain []base.Symbol to the Haystack contract,
// for tests that don't need a real rope.
type sliceHaystack []base.Symbol

func (h sliceHaystack) FullLen() int       { return len(h) }
func (h sliceHaystack) At(i int) base.Base { return base.NewPlain(h[i]) }

func syms(s string) []base.Symbol {
	out := make([]base.Symbol, len(s))
	for i, c := range []byte(s) {
		sym, ok := base.SymbolFromByte(c)
		if !ok {
			panic("bad test fixture: " + s)
		}
		out[i] = sym
	}
	return out
}

func naiveFind(hay []base.Symbol, needle []base.Symbol, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	for i := start; i+len(needle) <= len(hay); i++ {
		match := true
		for j, sym := range needle {
			if hay[i+j] != sym {
				match = false
				break
			}
		}
		if match {
			return i, true
		}
	}
	return 0, false
}

func TestFindSpecFixture(t *testing.T) {
	hay := sliceHaystack(syms("ICFPIICFCPFIICICFC"))
	needle := syms("IIC")

	cases := []struct {
		start int
		want  int
		ok    bool
	}{
		{0, 4, true},
		{1, 4, true},
		{3, 4, true},
		{4, 4, true},
		{5, 11, true},
		{8, 11, true},
		{11, 11, true},
		{12, 0, false},
		{14, 0, false},
	}
	for _, c := range cases {
		got, ok := Find(hay, needle, c.start)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("Find(hay, %q, %d) = (%d, %v), want (%d, %v)", "IIC", c.start, got, ok, c.want, c.ok)
		}
	}
}

func TestFindMatchesNaive(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	alphabet := []byte("ICFP")

	randomSymbols := func(n int) []base.Symbol {
		out := make([]base.Symbol, n)
		for i := range out {
			sym, _ := base.SymbolFromByte(alphabet[rnd.Intn(4)])
			out[i] = sym
		}
		return out
	}

	for trial := 0; trial < 300; trial++ {
		hay := randomSymbols(rnd.Intn(40))
		needle := randomSymbols(1 + rnd.Intn(5))
		start := 0
		if len(hay) > 0 {
			start = rnd.Intn(len(hay))
		}

		gotPos, gotOK := Find(sliceHaystack(hay), needle, start)
		wantPos, wantOK := naiveFind(hay, needle, start)
		if gotOK != wantOK || (gotOK && gotPos != wantPos) {
			t.Fatalf("trial %d: Find(%v, %v, %d) = (%d, %v), want (%d, %v)",
				trial, string(symBytes(hay)), string(symBytes(needle)), start, gotPos, gotOK, wantPos, wantOK)
		}
	}
}

func symBytes(syms []base.Symbol) []byte {
	out := make([]byte, len(syms))
	for i, s := range syms {
		out[i] = s.String()[0]
	}
	return out
}

func TestFindEmptyNeedleMatchesAtStart(t *testing.T) {
	hay := sliceHaystack(syms("ICFP"))
	got, ok := Find(hay, nil, 2)
	if !ok || got != 2 {
		t.Errorf("Find with empty needle = (%d, %v), want (2, true)", got, ok)
	}
}

func TestFindNoOccurrence(t *testing.T) {
	hay := sliceHaystack(syms("ICFP"))
	if _, ok := Find(hay, syms("PPP"), 0); ok {
		t.Error("Find found a needle that does not occur")
	}
}
