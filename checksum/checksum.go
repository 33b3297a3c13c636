/*
Package checksum computes a content fingerprint of a rope.Rope.

The rewrite engine's domain sequences run into the tens of megabases, so
a fingerprint that concatenates the whole sequence into one string
before hashing (the bio-teacher's seqhash approach for short sequences)
is not appropriate here; instead the hash is streamed leaf-by-leaf
through rope.Rope.ForEach, the same cache-efficient traversal the
engine itself uses, and written incrementally to a blake3 hasher.
*/
package checksum

import (
	"encoding/hex"

	"lukechampine.com/blake3"

	"github.com/shicks/endo/base"
	"github.com/shicks/endo/rope"
)

// Sum returns the blake3 hash of r's base sequence, as a 32-byte
// digest. Only symbols are hashed: provenance (address, level) carried
// by tracked bases does not affect the fingerprint, so a plain and a
// tracked rope holding the same symbols hash identically.
func Sum(r *rope.Rope) [32]byte {
	h := blake3.New(32, nil)
	buf := make([]byte, 0, rope.Threshold)
	flush := func() {
		if len(buf) > 0 {
			h.Write(buf)
			buf = buf[:0]
		}
	}
	r.ForEach(func(b base.Base) {
		buf = append(buf, symbolByte(b.Symbol()))
		if len(buf) == cap(buf) {
			flush()
		}
	})
	flush()
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hex returns Sum(r) hex-encoded, for logging and coverage reports.
func Hex(r *rope.Rope) string {
	sum := Sum(r)
	return hex.EncodeToString(sum[:])
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
