package coverage_test

import (
	"testing"

	"github.com/shicks/endo/base"
	"github.com/shicks/endo/coverage"
)

func TestNilMapRecordIsNoop(t *testing.T) {
	var m coverage.Map
	b := base.NewTracked(base.I, 5, 0)
	m.Record(b, coverage.PatSkip, 3)
	m.MarkSpliceBoundary(b, 3)
	if len(m) != 0 {
		t.Errorf("nil Map grew to %d entries", len(m))
	}
}

func TestRecordTracksFirstLastAndCount(t *testing.T) {
	m := coverage.New()
	b := base.NewTracked(base.C, 10, 2)
	m.Record(b, coverage.PatBaseTag(base.C), 1)
	m.Record(b, coverage.PatSkip, 5)
	e := m[coverage.Key{Address: 10, Level: 2}]
	if e == nil {
		t.Fatal("expected an entry for address 10, level 2")
	}
	if e.FirstIter != 1 || e.LastIter != 5 || e.Count != 2 {
		t.Errorf("entry = %+v, want FirstIter=1 LastIter=5 Count=2", e)
	}
	if e.LastUsageTag != coverage.PatSkip {
		t.Errorf("LastUsageTag = %v, want PatSkip", e.LastUsageTag)
	}
}

func TestRecordSkipsSyntheticLevel(t *testing.T) {
	m := coverage.New()
	synth := base.Synthetic(base.P)
	m.Record(synth, coverage.NumP, 1)
	if len(m) != 0 {
		t.Errorf("recording a synthetic base created %d entries, want 0", len(m))
	}
}

func TestRecordSkipsPlainBase(t *testing.T) {
	m := coverage.New()
	m.Record(base.NewPlain(base.I), coverage.PatBaseTag(base.I), 1)
	if len(m) != 0 {
		t.Errorf("recording a plain (untracked) base created %d entries, want 0", len(m))
	}
}

func TestMarkSpliceBoundary(t *testing.T) {
	m := coverage.New()
	b := base.NewTracked(base.F, 1, 0)
	m.MarkSpliceBoundary(b, 2)
	e := m[coverage.Key{Address: 1, Level: 0}]
	if e == nil || !e.SpliceBoundary {
		t.Errorf("expected SpliceBoundary = true, got %+v", e)
	}
}
