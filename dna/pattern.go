package dna

import "github.com/shicks/endo/coverage"

// parsePattern consumes a pattern program from pc's cursor, recording
// coverage and collecting any mid-parse RNA emissions into pc. ok is
// false if the cursor ran dry before a pattern-end marker (IIC/IIF at
// depth 0) was reached.
func parsePattern(pc *parseCtx) (items []PatternItem, ok bool) {
	c, cc := pc.cursor, pc.cc
	depth := 0
	for {
		switch nextOp(c) {
		case opInvalid:
			return items, false

		case opC, opF, opP, opIC:
			items = append(items, PatternItem{Kind: PatBases, Bases: parseBases(c, cc, true)})

		case opIF:
			lead := leadBase(c)
			cc.record(lead, coverage.PatSearch)
			c.Skip(3)
			items = append(items, PatternItem{Kind: PatSearch, Bases: parseBases(c, cc, true)})

		case opIP:
			lead := leadBase(c)
			cc.record(lead, coverage.PatSkip)
			c.Skip(2)
			n, ok2 := parseNumber(c, cc)
			if !ok2 {
				return items, false
			}
			items = append(items, PatternItem{Kind: PatSkip, N: n})

		case opIIC, opIIF:
			lead := leadBase(c)
			if depth == 0 {
				cc.record(lead, coverage.PatEnd)
				c.Skip(3)
				return items, true
			}
			cc.record(lead, coverage.PatClose)
			c.Skip(3)
			depth--
			items = append(items, PatternItem{Kind: PatCloseGroup})

		case opIIP:
			lead := leadBase(c)
			cc.record(lead, coverage.PatOpen)
			c.Skip(3)
			depth++
			items = append(items, PatternItem{Kind: PatOpenGroup})

		case opIII:
			pc.emitRNA()
		}
	}
}
