package dna

import (
	"github.com/shicks/endo/base"
	"github.com/shicks/endo/coverage"
	"github.com/shicks/endo/rope"
)

// parseCtx carries the state threaded through one call to parsePattern
// or parseTemplate beyond what the cursor itself holds: the coverage
// context, the RNA fragments captured by any III opcodes encountered,
// and a finished flag set when an III opcode's RNA fragment runs off the
// end of the rope (which the engine treats as "there is no more program
// to execute", mirroring the reference engine's exhaustion signal). The
// other subparsers report running off the end through the parsers' ok
// result instead.
type parseCtx struct {
	cursor   *rope.RopeCursor
	cc       covCtx
	finished bool
	rna      [][]base.Base
}

// emitRNA implements the III opcode, shared by the pattern and
// template parsers: it tags the opcode's leading base with RnaStart,
// skips the 3-base marker, then reads the next 7 bases verbatim as one
// RNA fragment, tagging each with its RnaBase·symbol. Running off the
// end mid-fragment marks the parse finished rather than failing it:
// a partial fragment is simply discarded.
func (p *parseCtx) emitRNA() {
	lead := leadBase(p.cursor)
	p.cc.record(lead, coverage.RnaStart)
	p.cursor.Skip(3)

	frag := make([]base.Base, 0, 7)
	for i := 0; i < 7; i++ {
		b, ok := p.cursor.Next()
		if !ok {
			p.finished = true
			return
		}
		p.cc.record(b, coverage.RnaBaseTag(b.Symbol()))
		frag = append(frag, b)
	}
	p.rna = append(p.rna, frag)
}
