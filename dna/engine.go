package dna

import (
	"github.com/shicks/endo/base"
	"github.com/shicks/endo/coverage"
	"github.com/shicks/endo/rope"
)

// Stats summarizes one full Run: how many iterations the engine
// executed, how many RNA fragments it emitted, and how many iterations
// ended in a failed match (which still consume the pattern+template
// prefix but rewrite nothing).
type Stats struct {
	Iterations    int
	RNAEmitted    int
	MatchFailures int
}

// Engine drives one Rope through the rewrite loop to completion,
// streaming RNA fragments to Sink and, when Cov is non-nil, recording
// source-tracking coverage as it goes.
type Engine struct {
	Rope    *rope.Rope
	Factory base.Factory
	Cov     coverage.Map
	Sink    RNASink
}

// Run executes iterations until the pattern or template parser signals
// it has run off the end of the DNA (ok=false or the finished flag).
func (e *Engine) Run() Stats {
	var stats Stats
	for {
		cursor := e.Rope.Cursor()
		pc := &parseCtx{cursor: cursor, cc: covCtx{cov: e.Cov, iter: stats.Iterations}}

		patItems, ok := parsePattern(pc)
		if !ok || pc.finished {
			return stats
		}
		tplItems, ok := parseTemplate(pc)
		if !ok || pc.finished {
			return stats
		}
		postTemplate := cursor.Pos()

		env := &Env{}
		matchCursor := e.Rope.Cursor()
		matchCursor.Seek(postTemplate)
		if Match(patItems, matchCursor, env, pc.cc) {
			e.rewrite(tplItems, env, matchCursor.Pos(), stats.Iterations)
		} else {
			stats.MatchFailures++
			e.Rope.Splice(0, postTemplate, nil)
		}

		for _, frag := range pc.rna {
			ev := rnaEventFrom(frag, stats.Iterations)
			if e.Sink != nil {
				e.Sink.Emit(ev)
			}
			stats.RNAEmitted++
		}
		stats.Iterations++
	}
}

// rewrite runs the splice planner over [0, matchEnd), the consumed
// pattern+template prefix plus the region the pattern matched, expanding
// every plan entry against the rope as it stood before any edit in
// this iteration, then applies the edits and records splice-boundary
// coverage at each new seam.
func (e *Engine) rewrite(tplItems []TemplateItem, env *Env, matchEnd, iter int) {
	plan := findSplice(tplItems, env, 0, matchEnd)

	type expansion struct {
		start, delLen int
		bases         []base.Base
	}
	exps := make([]expansion, len(plan))
	for i, entry := range plan {
		exps[i] = expansion{
			start:  entry.start,
			delLen: entry.len,
			bases:  expandTemplate(entry.items, env, e.Rope, e.Factory),
		}
	}

	for _, ex := range exps {
		e.Rope.Splice(ex.start, ex.delLen, ex.bases)
		e.markSpliceBoundary(ex.start, len(ex.bases), iter)
	}
}

func (e *Engine) markSpliceBoundary(start, insLen, iter int) {
	if e.Cov == nil {
		return
	}
	n := e.Rope.Len()
	if start > 0 {
		if left := e.Rope.Slice(start-1, start); len(left) == 1 {
			e.Cov.MarkSpliceBoundary(left[0], iter)
		}
	}
	if right := start + insLen; right < n {
		if rb := e.Rope.Slice(right, right+1); len(rb) == 1 {
			e.Cov.MarkSpliceBoundary(rb[0], iter)
		}
	}
}
