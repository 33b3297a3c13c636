package dna

import "github.com/shicks/endo/base"

// naturalBases encodes n as a little-endian bit string terminated by
// P, using factory to fabricate each base (address/level carry no
// provenance: a Len expansion's digits did not come from the original
// DNA). This is the inverse of parseNumber.
func naturalBases(n int, factory base.Factory) []base.Base {
	var out []base.Base
	for n > 0 {
		if n&1 != 0 {
			out = append(out, factory.Synthetic(base.C))
		} else {
			out = append(out, factory.Synthetic(base.I))
		}
		n >>= 1
	}
	out = append(out, factory.Synthetic(base.P))
	return out
}
