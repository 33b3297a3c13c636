package dna_test

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/shicks/endo/base"
	"github.com/shicks/endo/dna"
	"github.com/shicks/endo/rope"
)

func seqPlain(s string) []base.Base {
	f := base.PlainFactory{}
	out := make([]base.Base, len(s))
	for i, c := range []byte(s) {
		sym, ok := base.SymbolFromByte(c)
		if !ok {
			panic("bad fixture: " + s)
		}
		out[i] = f.FromSymbolPos(sym, i)
	}
	return out
}

func ropeString(r *rope.Rope) string {
	var sb strings.Builder
	r.ForEach(func(b base.Base) {
		sb.WriteByte("ICFP"[b.Symbol()])
	})
	return sb.String()
}

func TestEndToEndFixtures(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"fixture1", "IIPIPICPIICICIIFICCIFPPIICCFPC", "PICFC"},
		{"fixture2", "IIPIPICPIICICIIFICCIFCCCPPIICCFPC", "PIICCFCFFPC"},
		{"fixture3", "IIPIPIICPIICIICCIICFCFC", "I"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := rope.FromSlice(seqPlain(c.in))
			engine := &dna.Engine{Rope: r, Factory: base.PlainFactory{}}
			engine.Run()
			got := ropeString(r)
			if got == c.want {
				return
			}
			rnaDiff := difflib.UnifiedDiff{
				A:        difflib.SplitLines(c.want),
				B:        difflib.SplitLines(got),
				FromFile: "want",
				ToFile:   "got",
				Context:  3,
			}
			diffText, _ := difflib.GetUnifiedDiffString(rnaDiff)
			t.Errorf("result = %q, want %q. Got this diff:\n%s", got, c.want, diffText)
		})
	}
}

func TestEngineEmitsRNAToSink(t *testing.T) {
	// A single iteration whose pattern+template consist of nothing but
	// an RNA-emitting III opcode followed by the pattern-end marker:
	// pattern = III <7 bases> IIC, template = IIC (empty, ends immediately).
	in := "III" + "ICFPICF" + "IIC" + "IIC"
	r := rope.FromSlice(seqPlain(in))
	sink := &dna.SliceSink{}
	engine := &dna.Engine{Rope: r, Factory: base.PlainFactory{}, Sink: sink}
	stats := engine.Run()
	if stats.RNAEmitted != 1 {
		t.Fatalf("RNAEmitted = %d, want 1", stats.RNAEmitted)
	}
	if len(sink.Events) != 1 {
		t.Fatalf("sink got %d events, want 1", len(sink.Events))
	}
	want := [7]base.Symbol{base.I, base.C, base.F, base.P, base.I, base.C, base.F}
	if sink.Events[0].Fragment != want {
		t.Errorf("fragment = %v, want %v", sink.Events[0].Fragment, want)
	}
}

func TestEngineCountsMatchFailures(t *testing.T) {
	// Pattern "C" (one literal base I) + pattern-end IIC; template end IIC
	// immediately; remainder is empty so matching the single Bases([I])
	// item against nothing fails, and the engine splices out the
	// consumed prefix without rewriting.
	in := "C" + "IIC" + "IIC"
	r := rope.FromSlice(seqPlain(in))
	engine := &dna.Engine{Rope: r, Factory: base.PlainFactory{}}
	stats := engine.Run()
	if stats.MatchFailures != 1 {
		t.Errorf("MatchFailures = %d, want 1", stats.MatchFailures)
	}
	if r.Len() != 0 {
		t.Errorf("rope.Len() = %d, want 0 (consumed prefix spliced out)", r.Len())
	}
}
