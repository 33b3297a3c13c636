package dna

import "github.com/shicks/endo/base"

// spliceEntry is one (rope_range, template_slice) pairing produced by
// findSplice: replace range.start..range.start+range.len in the rope
// with the expansion of items.
type spliceEntry struct {
	start, len int
	items      []TemplateItem
}

// spliceCandidate is a template item that could anchor a splice point:
// a Ref{group, level=0} together with the rope range its group
// captured.
type spliceCandidate struct {
	itemIdx    int
	start, end int
}

// findSplice partitions [rangeStart, rangeEnd) of the rope (the region
// covered by the matched pattern+template) around every splice
// candidate in items — a Ref{group, level=0} whose captured range lies
// entirely inside the current working range — leaving each candidate's
// own range untouched (its expansion would just be a verbatim copy of
// what the rope already holds there) and emitting one entry for every
// maximal run of items with no remaining candidate.
//
// Ties in "largest captured range" favor the earlier item in
// occurrence order.
//
// The returned entries are ordered so that applying them in list order
// via rope.Splice never invalidates a later entry's coordinates: each
// recursive call emits its right subproblem's entries before its left
// subproblem's, so starts appear in non-increasing order overall.
func findSplice(items []TemplateItem, env *Env, rangeStart, rangeEnd int) []spliceEntry {
	var candidates []spliceCandidate
	for i, it := range items {
		g, ok := it.AsUnprotectedGroup()
		if !ok || g < 0 || g >= len(env.Groups) {
			continue
		}
		r := env.Groups[g]
		candidates = append(candidates, spliceCandidate{itemIdx: i, start: r[0], end: r[1]})
	}
	return spliceInternal(candidates, items, rangeStart, rangeEnd)
}

func spliceInternal(candidates []spliceCandidate, items []TemplateItem, rangeStart, rangeEnd int) []spliceEntry {
	var inRange []spliceCandidate
	for _, c := range candidates {
		if c.start >= rangeStart && c.end <= rangeEnd {
			inRange = append(inRange, c)
		}
	}

	bestPos := -1
	bestLen := -1
	for i, c := range inRange {
		l := c.end - c.start
		if l > bestLen {
			bestLen = l
			bestPos = i
		}
	}

	if bestPos < 0 {
		return []spliceEntry{{start: rangeStart, len: rangeEnd - rangeStart, items: items}}
	}

	best := inRange[bestPos]
	right := spliceInternal(inRange[bestPos+1:], items[best.itemIdx+1:], best.end, rangeEnd)
	left := spliceInternal(inRange[:bestPos], items[:best.itemIdx], rangeStart, best.start)
	return append(right, left...)
}

// rangeReader abstracts the source the expander copies captured-group
// content from (*rope.Rope satisfies it directly via Slice), so tests
// can supply a fake without building a rope.
type rangeReader interface {
	Slice(start, end int) []base.Base
}

// expandTemplate realizes one splice entry's template-item slice into
// a fresh slice of bases, reading captured-range content from src (the
// rope as it stood before any splice in this plan was applied — plan
// expansion always completes before the first edit, per the engine's
// ordering invariant) and fabricating synthetic bases for Len and for
// fallback cases via factory.
func expandTemplate(items []TemplateItem, env *Env, src rangeReader, factory base.Factory) []base.Base {
	var out []base.Base
	for _, it := range items {
		switch it.Kind {
		case TplBases:
			out = append(out, it.Bases...)
		case TplLen:
			if it.Group >= 0 && it.Group < len(env.Groups) {
				g := env.Groups[it.Group]
				out = append(out, naturalBases(g[1]-g[0], factory)...)
			} else {
				out = append(out, factory.Synthetic(base.P))
			}
		case TplRef:
			if it.Group >= 0 && it.Group < len(env.Groups) {
				g := env.Groups[it.Group]
				for _, b := range src.Slice(g[0], g[1]) {
					out = append(out, b.Protect(uint8(it.Level))...)
				}
			}
		}
	}
	return out
}
