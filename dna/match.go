package dna

import (
	"github.com/shicks/endo/base"
	"github.com/shicks/endo/coverage"
	"github.com/shicks/endo/rope"
	"github.com/shicks/endo/search"
)

// Match runs items against c, starting at c's current position,
// recording every captured group into env. It
// reports whether the whole pattern matched; on failure c's position
// is left wherever matching gave up (callers that need it restored
// should save c.Pos() beforehand).
func Match(items []PatternItem, c *rope.RopeCursor, env *Env, cc covCtx) bool {
	var openStack []int
	for _, item := range items {
		switch item.Kind {
		case PatBases:
			for _, want := range item.Bases {
				got, ok := c.Next()
				if !ok || got.Symbol() != want.Symbol() {
					return false
				}
			}
		case PatSkip:
			if c.Pos()+item.N > c.FullLen() {
				return false
			}
			c.Skip(item.N)
		case PatSearch:
			needle := make([]base.Symbol, len(item.Bases))
			for i, b := range item.Bases {
				needle[i] = b.Symbol()
			}
			idx, ok := search.Find(c, needle, c.Pos())
			if !ok {
				return false
			}
			c.Seek(idx + len(needle))
			for i := idx; i < idx+len(needle); i++ {
				cc.record(c.At(i), coverage.SearchBaseTag(c.At(i).Symbol()))
			}
		case PatOpenGroup:
			openStack = append(openStack, c.Pos())
		case PatCloseGroup:
			if len(openStack) == 0 {
				return false
			}
			start := openStack[len(openStack)-1]
			openStack = openStack[:len(openStack)-1]
			env.closeGroup(start, c.Pos())
		}
	}
	return true
}
