package base

// PlainBase carries only a 2-bit symbol, no provenance. Used when the
// engine runs without the source-tracking overlay.
type PlainBase struct {
	sym Symbol
}

// NewPlain wraps sym in a PlainBase.
func NewPlain(sym Symbol) PlainBase {
	return PlainBase{sym: sym}
}

func (b PlainBase) Symbol() Symbol { return b.sym }
func (b PlainBase) ToU2() uint8    { return uint8(b.sym) }
func (b PlainBase) HasSource() bool { return false }
func (b PlainBase) Address() int32  { return 0 }
func (b PlainBase) Level() int8     { return 0 }

func (b PlainBase) Protect(level uint8) []Base {
	n := int(b.sym) + int(level)
	syms := expandSymbols(n)
	out := make([]Base, len(syms))
	for i, s := range syms {
		out[i] = PlainBase{sym: s}
	}
	return out
}

func (b PlainBase) Unprotect() Base {
	return PlainBase{sym: unprotectSymbol(b.sym)}
}

// PlainFactory builds PlainBase values.
type PlainFactory struct{}

func (PlainFactory) FromSymbol(sym Symbol) Base           { return PlainBase{sym: sym} }
func (PlainFactory) FromSymbolPos(sym Symbol, _ int) Base { return PlainBase{sym: sym} }
func (PlainFactory) Synthetic(sym Symbol) Base            { return PlainBase{sym: sym} }
func (PlainFactory) HasSource() bool                      { return false }
