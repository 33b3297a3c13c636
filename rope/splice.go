package rope

import "github.com/shicks/endo/base"

// Splice removes length bases starting at start and inserts insert (may
// be nil/empty) in their place. start+length must not exceed Len(); a
// caller that violates this panics, per the "invariant violation is
// fatal" error design.
func (r *Rope) Splice(start, length int, insert []base.Base) {
	if start < 0 || length < 0 || start+length > r.Len() {
		panic("rope: Splice range out of bounds")
	}
	r.root = maybeCollapse(spliceNode(r.root, start, length, insert))
}

func spliceNode(n node, start, delLen int, insert []base.Base) node {
	switch t := n.(type) {
	case nil:
		if start != 0 || delLen != 0 {
			panic("rope: splice range out of bounds on empty rope")
		}
		if len(insert) == 0 {
			return nil
		}
		return &leaf{bases: append([]base.Base(nil), insert...)}
	case *leaf:
		return spliceLeaf(t, start, delLen, insert)
	case *app:
		return spliceApp(t, start, delLen, insert)
	default:
		panic("rope: corrupt node")
	}
}

func spliceLeaf(l *leaf, start, delLen int, insert []base.Base) node {
	m := len(l.bases)
	if start < 0 || delLen < 0 || start+delLen > m {
		panic("rope: splice range out of bounds")
	}
	newLen := m - delLen + len(insert)
	if newLen == 0 {
		return nil
	}
	prefixSuffixOnly := start == 0 || start+delLen == m
	if newLen < Threshold || prefixSuffixOnly {
		merged := make([]base.Base, 0, newLen)
		merged = append(merged, l.bases[:start]...)
		merged = append(merged, insert...)
		merged = append(merged, l.bases[start+delLen:]...)
		l.bases = merged
		return l
	}

	prefix := l.bases[:start]
	suffix := l.bases[start+delLen:]

	var left, right node
	switch {
	case len(insert) == 0:
		left = &leaf{bases: append([]base.Base(nil), prefix...)}
		right = &leaf{bases: append([]base.Base(nil), suffix...)}
	case len(prefix) <= len(suffix):
		// Attach the inserted middle to the shorter outer piece (the
		// prefix here), per the "attach to shorter side" policy.
		mid := make([]base.Base, 0, len(prefix)+len(insert))
		mid = append(mid, prefix...)
		mid = append(mid, insert...)
		left = &leaf{bases: mid}
		right = &leaf{bases: append([]base.Base(nil), suffix...)}
	default:
		mid := make([]base.Base, 0, len(insert)+len(suffix))
		mid = append(mid, insert...)
		mid = append(mid, suffix...)
		left = &leaf{bases: append([]base.Base(nil), prefix...)}
		right = &leaf{bases: mid}
	}
	return concatNodes(left, right)
}

func spliceApp(a *app, start, delLen int, insert []base.Base) node {
	ln := length(a.left)
	end := start + delLen
	switch {
	case end <= ln:
		a.left = spliceNode(a.left, start, delLen, insert)
		return rebalance(a)
	case start >= ln:
		a.right = spliceNode(a.right, start-ln, delLen, insert)
		return rebalance(a)
	default:
		leftPart := spliceNode(a.left, start, ln-start, nil)
		rightPart := spliceNode(a.right, 0, end-ln, insert)
		return concatNodes(leftPart, rightPart)
	}
}

// maybeCollapse implements invariant L4: an App whose total length has
// dropped below Threshold may collapse back to a single leaf.
func maybeCollapse(n node) node {
	if n == nil {
		return nil
	}
	if _, isLeaf := n.(*leaf); isLeaf {
		return n
	}
	if length(n) >= Threshold {
		return n
	}
	bases := make([]base.Base, 0, length(n))
	forEachNode(n, func(b base.Base) { bases = append(bases, b) })
	return &leaf{bases: bases}
}

// rebalance restores the AVL balance factor of a (and collapses a
// degenerate child-less side), returning the node that should replace a
// in its parent.
func rebalance(n node) node {
	a, ok := n.(*app)
	if !ok {
		return n
	}
	if a.left == nil {
		return a.right
	}
	if a.right == nil {
		return a.left
	}
	a.recompute()
	switch bf := height(a.left) - height(a.right); {
	case bf > 1:
		l := a.left.(*app)
		if height(l.left) >= height(l.right) {
			return rotateRight(a)
		}
		a.left = rotateLeft(l)
		return rotateRight(a)
	case bf < -1:
		r := a.right.(*app)
		if height(r.right) >= height(r.left) {
			return rotateLeft(a)
		}
		a.right = rotateRight(r)
		return rotateLeft(a)
	default:
		return a
	}
}

func rotateRight(a *app) node {
	l := a.left.(*app)
	a.left = l.right
	a.recompute()
	l.right = a
	l.recompute()
	return l
}

func rotateLeft(a *app) node {
	r := a.right.(*app)
	a.right = r.left
	a.recompute()
	r.left = a
	r.recompute()
	return r
}
