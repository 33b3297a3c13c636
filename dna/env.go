package dna

// Env is the match environment accumulated while a pattern is matched
// against the rope: the [start, end) ranges captured by each
// OpenGroup/CloseGroup pair, indexed by the order the groups closed (not
// the order they opened). Match does not write Starts; it tracks the
// start positions of still-open groups on a local stack.
type Env struct {
	Starts []int
	Groups [][2]int
}

// closeGroup appends the now-complete [start, pos) range for the group
// that opened at start, and returns its index.
func (e *Env) closeGroup(start, pos int) int {
	e.Groups = append(e.Groups, [2]int{start, pos})
	return len(e.Groups) - 1
}
