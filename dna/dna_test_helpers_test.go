package dna

import (
	"strings"

	"github.com/shicks/endo/base"
	"github.com/shicks/endo/rope"
)

// seqPlain builds plain (untracked) bases from a string of I/C/F/P.
func seqPlain(s string) []base.Base {
	out := make([]base.Base, len(s))
	f := base.PlainFactory{}
	for i, c := range []byte(s) {
		sym, ok := base.SymbolFromByte(c)
		if !ok {
			panic("bad test fixture: " + s)
		}
		out[i] = f.FromSymbolPos(sym, i)
	}
	return out
}

func symString(bs []base.Base) string {
	var sb strings.Builder
	for _, b := range bs {
		sb.WriteByte(symByte(b.Symbol()))
	}
	return sb.String()
}

func ropeString(r *rope.Rope) string {
	var sb strings.Builder
	r.ForEach(func(b base.Base) {
		sb.WriteByte(symByte(b.Symbol()))
	})
	return sb.String()
}

func symByte(s base.Symbol) byte {
	switch s {
	case base.I:
		return 'I'
	case base.C:
		return 'C'
	case base.F:
		return 'F'
	case base.P:
		return 'P'
	default:
		return '?'
	}
}

func newParseCtx(s string) *parseCtx {
	r := rope.FromSlice(seqPlain(s))
	return &parseCtx{cursor: r.Cursor()}
}
