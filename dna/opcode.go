package dna

import (
	"github.com/shicks/endo/base"
	"github.com/shicks/endo/coverage"
	"github.com/shicks/endo/rope"
)

// opcode identifies which of the pattern/template instructions the
// next 1-3 bases at the cursor spell out. Both parsers share this
// lookahead; only what each opcode builds differs.
type opcode int

const (
	opC opcode = iota
	opF
	opP
	opIC
	opIF
	opIP
	opIIC
	opIIF
	opIIP
	opIII
	opInvalid
)

// nextOp decodes the opcode at the cursor's current position without
// consuming anything.
func nextOp(c *rope.RopeCursor) opcode {
	i := c.Pos()
	b0, ok := c.TryAt(i)
	if !ok {
		return opInvalid
	}
	switch b0.Symbol() {
	case base.C:
		return opC
	case base.F:
		return opF
	case base.P:
		return opP
	}
	b1, ok := c.TryAt(i + 1)
	if !ok {
		return opInvalid
	}
	switch b1.Symbol() {
	case base.C:
		return opIC
	case base.F:
		return opIF
	case base.P:
		return opIP
	}
	b2, ok := c.TryAt(i + 2)
	if !ok {
		return opInvalid
	}
	switch b2.Symbol() {
	case base.C:
		return opIIC
	case base.F:
		return opIIF
	case base.P:
		return opIIP
	default:
		return opIII
	}
}

// covCtx bundles the coverage map and current iteration number that
// flow through parsing. Its zero value (a nil map, iteration 0) is a
// valid, inert context: every record call on it is a no-op, so callers
// that never enable source tracking need not special-case anything.
type covCtx struct {
	cov  coverage.Map
	iter int
}

func (c covCtx) record(b base.Base, tag coverage.UsageTag) {
	c.cov.Record(b, tag, c.iter)
}

// leadBase returns the base at the cursor's current position, or nil
// if the cursor is already past the end (which only happens for a
// malformed call; every opcode branch that reaches here has already
// confirmed via nextOp that a base exists).
func leadBase(c *rope.RopeCursor) base.Base {
	b, _ := c.TryAt(c.Pos())
	return b
}

// parseBases is the shared "literal base run" subparser: it consumes
// contiguous non-I bases (one base each) and IC pairs (two bases
// collapsing to one, the "protected I" encoding), unprotecting every
// emitted symbol, and halts on the first base that fits neither shape
// or when the cursor runs out. When tagLiterals is set, each produced
// base is recorded with the PatBase·symbol tag for its own (unprotected)
// symbol — template literal runs carry no such tag in the usage
// enumeration, so template parsing passes tagLiterals=false.
func parseBases(c *rope.RopeCursor, cc covCtx, tagLiterals bool) []base.Base {
	var out []base.Base
	for {
		b, ok := c.Peek()
		if !ok {
			return out
		}
		var produced base.Base
		if b.Symbol() == base.I {
			next, ok := c.TryAt(c.Pos() + 1)
			if !ok || next.Symbol() != base.C {
				return out
			}
			produced = b.Unprotect()
			c.Skip(2)
		} else {
			produced = b.Unprotect()
			c.Skip(1)
		}
		out = append(out, produced)
		if tagLiterals {
			cc.record(produced, coverage.PatBaseTag(produced.Symbol()))
		}
	}
}

// parseNumber is the shared natural-number subparser: each C
// contributes a 1-bit, each I or F a 0-bit, little-endian, terminated
// by P. ok is false if the cursor runs out before a terminating P.
// Every consumed base is recorded with Num0, Num1, or NumP in place.
func parseNumber(c *rope.RopeCursor, cc covCtx) (n int, ok bool) {
	mask := 1
	for {
		b, hasNext := c.Next()
		if !hasNext {
			return 0, false
		}
		switch b.Symbol() {
		case base.C:
			n |= mask
			cc.record(b, coverage.Num1)
		case base.P:
			cc.record(b, coverage.NumP)
			return n, true
		default:
			cc.record(b, coverage.Num0)
		}
		mask <<= 1
	}
}
