package dna

import "github.com/shicks/endo/base"

// Options configures one engine run.
type Options struct {
	// HasSource enables the tracked-base carrier and source-tracking
	// coverage. With it off the engine runs over plain bases and no
	// coverage is ever recorded, regardless of whether a Cov map is
	// supplied to Engine.
	HasSource bool
}

// Factory returns the base.Factory matching opt.HasSource.
func (opt Options) Factory() base.Factory {
	if opt.HasSource {
		return base.TrackedFactory{}
	}
	return base.PlainFactory{}
}
