/*
Package rope implements the mutable sequence container the rewrite
engine splices on every iteration: a balanced binary tree over leaf
arrays of base.Base, offering O(log n) random access and splice with
cache-efficient sequential iteration.

A node is either a leaf (a contiguous array of bases) or an app (an
ordered pair of child ropes with cached length and height). Leaves
shorter than Threshold are spliced in place; longer ones are split.
After any structural edit the affected spine is rebalanced AVL-style.
*/
package rope

import "github.com/shicks/endo/base"

// Threshold is the leaf-size boundary below which splices are
// performed in place rather than by splitting the leaf into an App.
const Threshold = 500

// node is the shared shape of leaf and app. Both implementations are
// unexported: callers only ever see a *Rope.
type node interface {
	length() int
	height() int8
}

type leaf struct {
	bases []base.Base
}

func (l *leaf) length() int  { return len(l.bases) }
func (l *leaf) height() int8 { return 0 }

type app struct {
	left, right node
	len         int
	ht          int8
}

func (a *app) length() int  { return a.len }
func (a *app) height() int8 { return a.ht }

func (a *app) recompute() {
	a.len = length(a.left) + length(a.right)
	a.ht = 1 + max8(height(a.left), height(a.right))
}

func length(n node) int {
	if n == nil {
		return 0
	}
	return n.length()
}

func height(n node) int8 {
	if n == nil {
		return -1
	}
	return n.height()
}

func max8(a, b int8) int8 {
	if a > b {
		return a
	}
	return b
}

// Rope is a mutable, tree-backed sequence of bases. The zero value is
// an empty rope.
type Rope struct {
	root node
}

// New returns an empty rope.
func New() *Rope { return &Rope{} }

// FromSlice builds a rope holding a copy of bases.
func FromSlice(bases []base.Base) *Rope {
	if len(bases) == 0 {
		return &Rope{}
	}
	cp := append([]base.Base(nil), bases...)
	return &Rope{root: &leaf{bases: cp}}
}

// Len returns the total number of bases in the rope. O(1).
func (r *Rope) Len() int { return length(r.root) }

// Height returns the tree height, 0 for an empty or single-leaf rope.
func (r *Rope) Height() int8 {
	h := height(r.root)
	if h < 0 {
		return 0
	}
	return h
}

// concatNodes joins left and right into one node, rebalancing locally.
// Ownership of both subtrees moves to the result.
func concatNodes(left, right node) node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	a := &app{left: left, right: right}
	a.recompute()
	return rebalance(a)
}

// Append concatenates other onto the end of r in place. other is left
// empty afterward: ownership of its tree moves into r, mirroring the
// reference engine's move semantics for rope concatenation.
func (r *Rope) Append(other *Rope) {
	r.root = concatNodes(r.root, other.root)
	other.root = nil
}

// Prepend concatenates other onto the front of r in place, consuming other.
func (r *Rope) Prepend(other *Rope) {
	r.root = concatNodes(other.root, r.root)
	other.root = nil
}

// Slice returns a fresh copy of the bases in [start, end). It walks
// only the subtrees overlapping the range, copying whole leaf runs
// where possible.
func (r *Rope) Slice(start, end int) []base.Base {
	if start < 0 || end < start || end > r.Len() {
		panic("rope: Slice range out of bounds")
	}
	var out []base.Base
	sliceInto(r.root, start, end, &out)
	return out
}

func sliceInto(n node, lo, hi int, out *[]base.Base) {
	if n == nil || lo >= hi {
		return
	}
	switch t := n.(type) {
	case *leaf:
		*out = append(*out, t.bases[lo:hi]...)
	case *app:
		ln := length(t.left)
		if lo < ln {
			h := hi
			if h > ln {
				h = ln
			}
			sliceInto(t.left, lo, h, out)
		}
		if hi > ln {
			l := lo - ln
			if l < 0 {
				l = 0
			}
			sliceInto(t.right, l, hi-ln, out)
		}
	}
}

// ForEach walks every base in order, leaf array at a time. This is the
// cache-efficient "iter()" traversal from the package doc.
func (r *Rope) ForEach(f func(base.Base)) {
	forEachNode(r.root, f)
}

func forEachNode(n node, f func(base.Base)) {
	switch t := n.(type) {
	case nil:
		return
	case *leaf:
		for _, b := range t.bases {
			f(b)
		}
	case *app:
		forEachNode(t.left, f)
		forEachNode(t.right, f)
	}
}
