package base

const (
	addrBits     = 24
	addrMask     = uint32(1<<addrBits-1) << 2
	levelShift   = 26
	levelBits    = 6
	levelBitMask = uint8(1<<levelBits - 1) // 0x3f
)

// TrackedBase is a 32-bit packed record: bits 0-1 hold the symbol, bits
// 2-25 hold a 24-bit modular source address, and bits 26-31 hold a
// signed escape level in [-32, 31]. Level -32 marks a base with no
// provenance ("synthetic"), e.g. one produced by a Len expansion.
type TrackedBase uint32

// NewTracked packs sym, addr (taken modulo 2^24), and level into a TrackedBase.
func NewTracked(sym Symbol, addr int32, level int8) TrackedBase {
	a := uint32(addr) & (1<<addrBits - 1)
	l := uint32(uint8(level)&levelBitMask) << levelShift
	return TrackedBase(uint32(sym) | a<<2 | l)
}

// Synthetic builds a TrackedBase with no provenance: address 0, level -32.
func Synthetic(sym Symbol) TrackedBase {
	return NewTracked(sym, 0, SyntheticLevel)
}

func (b TrackedBase) Symbol() Symbol { return Symbol(uint32(b) & 3) }
func (b TrackedBase) ToU2() uint8    { return uint8(uint32(b) & 3) }
func (b TrackedBase) HasSource() bool { return true }

func (b TrackedBase) Address() int32 {
	return int32((uint32(b) & addrMask) >> 2)
}

func (b TrackedBase) Level() int8 {
	raw := uint8((uint32(b) >> levelShift) & uint32(levelBitMask))
	if raw > 31 {
		return int8(raw) - 64
	}
	return int8(raw)
}

func (b TrackedBase) Protect(level uint8) []Base {
	newLevel := saturateProtect(b.Level(), level)
	n := int(b.Symbol()) + int(level)
	syms := expandSymbols(n)
	addr := b.Address()
	out := make([]Base, len(syms))
	for i, s := range syms {
		out[i] = NewTracked(s, addr, newLevel)
	}
	return out
}

func (b TrackedBase) Unprotect() Base {
	return NewTracked(unprotectSymbol(b.Symbol()), b.Address(), saturateUnprotect(b.Level()))
}

// TrackedFactory builds TrackedBase values.
type TrackedFactory struct{}

func (TrackedFactory) FromSymbol(sym Symbol) Base {
	return NewTracked(sym, 0, 0)
}

func (TrackedFactory) FromSymbolPos(sym Symbol, pos int) Base {
	return NewTracked(sym, int32(pos), 0)
}

func (TrackedFactory) Synthetic(sym Symbol) Base { return Synthetic(sym) }

func (TrackedFactory) HasSource() bool { return true }
