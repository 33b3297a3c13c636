package dna

import "github.com/shicks/endo/coverage"

// parseTemplate consumes a template program from pc's cursor, sharing
// the pattern parser's opcode table but building replacement
// instructions instead of match instructions. ok is false if the
// cursor ran dry before a template-end marker (IIC/IIF) was reached.
func parseTemplate(pc *parseCtx) (items []TemplateItem, ok bool) {
	c, cc := pc.cursor, pc.cc
	for {
		switch nextOp(c) {
		case opInvalid:
			return items, false

		case opC, opF, opP, opIC:
			items = append(items, TemplateItem{Kind: TplBases, Bases: parseBases(c, cc, false)})

		case opIF, opIP:
			lead := leadBase(c)
			cc.record(lead, coverage.TplRef)
			c.Skip(2)
			level, ok2 := parseNumber(c, cc)
			if !ok2 {
				return items, false
			}
			group, ok3 := parseNumber(c, cc)
			if !ok3 {
				return items, false
			}
			items = append(items, TemplateItem{Kind: TplRef, Level: level, Group: group})

		case opIIC, opIIF:
			lead := leadBase(c)
			cc.record(lead, coverage.TplEnd)
			c.Skip(3)
			return items, true

		case opIIP:
			lead := leadBase(c)
			cc.record(lead, coverage.TplLen)
			c.Skip(3)
			group, ok2 := parseNumber(c, cc)
			if !ok2 {
				return items, false
			}
			items = append(items, TemplateItem{Kind: TplLen, Group: group})

		case opIII:
			pc.emitRNA()
		}
	}
}
