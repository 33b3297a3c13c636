package rope

import "github.com/shicks/endo/base"

// RopeCursor is a read-only, borrowed view into a Rope. It caches a
// "finger" — the leaf currently under the cursor and that leaf's global
// start offset — so that sequential Next calls and locally clustered At
// calls are O(1) amortized; Seek and Skip are lazy index updates only,
// re-resolving the finger on the next access. At worst (a jump far from
// the cached leaf) resolution is O(log n).
//
// A cursor must not outlive mutation of the rope it was taken from: the
// engine loop always finishes parsing and matching (which only read
// through a cursor) before it splices.
type RopeCursor struct {
	rope      *Rope
	pos       int
	leaf      *leaf
	leafStart int
}

// Cursor returns a cursor positioned at the start of r.
func (r *Rope) Cursor() *RopeCursor {
	c := &RopeCursor{rope: r}
	c.resolveFinger(0)
	return c
}

// FullLen is the length of the underlying rope.
func (c *RopeCursor) FullLen() int { return c.rope.Len() }

// Pos returns the cursor's current logical position.
func (c *RopeCursor) Pos() int { return c.pos }

// AtEnd reports whether the cursor has reached the end of the rope.
func (c *RopeCursor) AtEnd() bool { return c.pos >= c.rope.Len() }

// Seek moves the cursor to an absolute position. Lazy: the finger is
// not re-resolved until the next read.
func (c *RopeCursor) Seek(pos int) { c.pos = pos }

// Skip advances (or rewinds, for a negative delta) the cursor by delta
// positions. Lazy, like Seek.
func (c *RopeCursor) Skip(delta int) { c.pos += delta }

// resolveFinger re-descends from the root to find the leaf containing
// i, caching it (and its global start offset) for subsequent accesses.
func (c *RopeCursor) resolveFinger(i int) {
	full := c.rope.Len()
	if i < 0 || i > full {
		panic("rope: cursor position out of range")
	}
	if i == full {
		c.leaf = nil
		c.leafStart = full
		return
	}
	n := c.rope.root
	offset := 0
	for {
		switch t := n.(type) {
		case *leaf:
			c.leaf = t
			c.leafStart = offset
			return
		case *app:
			ln := length(t.left)
			if i-offset < ln {
				n = t.left
			} else {
				offset += ln
				n = t.right
			}
		default:
			panic("rope: cursor descended into corrupt node")
		}
	}
}

// at reads the base at global position i, re-descending only if i
// falls outside the cached leaf window.
func (c *RopeCursor) at(i int) base.Base {
	if c.leaf == nil || i < c.leafStart || i >= c.leafStart+len(c.leaf.bases) {
		c.resolveFinger(i)
	}
	return c.leaf.bases[i-c.leafStart]
}

// Peek returns the base at the current position without advancing.
func (c *RopeCursor) Peek() (base.Base, bool) {
	if c.AtEnd() {
		return nil, false
	}
	return c.at(c.pos), true
}

// Next returns the base at the current position and advances by one.
func (c *RopeCursor) Next() (base.Base, bool) {
	b, ok := c.Peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// At performs an absolute random-access read. It panics if i is out of
// range — callers that need a non-panicking form should use TryAt.
func (c *RopeCursor) At(i int) base.Base {
	if i < 0 || i >= c.rope.Len() {
		panic("rope: At index out of range")
	}
	return c.at(i)
}

// TryAt is the non-panicking form of At.
func (c *RopeCursor) TryAt(i int) (base.Base, bool) {
	if i < 0 || i >= c.rope.Len() {
		return nil, false
	}
	return c.at(i), true
}
