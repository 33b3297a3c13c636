package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/shicks/endo/base"
	"github.com/shicks/endo/checksum"
	"github.com/shicks/endo/coverage"
	"github.com/shicks/endo/dna"
	"github.com/shicks/endo/rope"
)

// runEndo loads the DNA file named by the first argument (and the
// optional --prefix file), runs the engine to completion, and streams
// RNA to stdout.
func runEndo(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("endo: usage: endo [flags] <dna-file>")
	}

	opts := dna.Options{HasSource: c.Bool("source")}
	factory := opts.Factory()

	bases, err := loadBases(c.Args().First(), factory)
	if err != nil {
		return err
	}
	if prefixPath := c.String("prefix"); prefixPath != "" {
		prefix, err := loadBases(prefixPath, factory)
		if err != nil {
			return err
		}
		bases = append(prefix, bases...)
	}

	var cov coverage.Map
	if opts.HasSource {
		cov = coverage.New()
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	sink := &writerSink{w: out, debug: c.Bool("debug-rna")}

	engine := &dna.Engine{
		Rope:    rope.FromSlice(bases),
		Factory: factory,
		Cov:     cov,
		Sink:    sink,
	}
	stats := engine.Run()

	if c.Bool("stats") {
		fmt.Fprintf(os.Stderr, "iterations=%d rna=%d failures=%d checksum=%s\n",
			stats.Iterations, stats.RNAEmitted, stats.MatchFailures, checksum.Hex(engine.Rope))
	}

	if covPath := c.String("coverage-out"); covPath != "" {
		if err := writeCoverageReport(covPath, cov); err != nil {
			return err
		}
	}

	return nil
}

// loadBases reads and decodes path into bases via factory.
func loadBases(path string, factory base.Factory) ([]base.Base, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dna.DecodeStream(f, factory)
}

// writerSink streams RNA fragments to an underlying writer, one
// 7-character line per fragment.
type writerSink struct {
	w     *bufio.Writer
	debug bool
}

func (s *writerSink) Emit(ev dna.RNAEvent) {
	for _, sym := range ev.Fragment {
		s.w.WriteByte(symbolByte(sym))
	}
	if s.debug && ev.Origin != nil {
		fmt.Fprintf(s.w, " iter=%d addr=%d level=%d", ev.Iter, ev.Origin.Address, ev.Origin.Level)
	}
	s.w.WriteByte('\n')
}

func symbolByte(s base.Symbol) byte {
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

// writeCoverageReport writes one line per covered (address, level)
// key. The human-readable run-decoding pretty-printer described for
// the external coverage report is out of scope for this core engine
// (spec Non-goal); this emits the raw per-key records it would consume.
func writeCoverageReport(path string, cov coverage.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	for key, e := range cov {
		fmt.Fprintf(w, "addr=%d level=%d first=%d last=%d count=%d tag=%s splice=%v\n",
			key.Address, key.Level, e.FirstIter, e.LastIter, e.Count, e.LastUsageTag, e.SpliceBoundary)
	}
	return nil
}
