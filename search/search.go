/*
Package search implements Boyer–Moore exact search over the four-symbol
base alphabet, used by the pattern matcher's Search item.

Both the bad-symbol and good-suffix tables are built fresh for every
invocation: needles in practice are short (typically well under 100
symbols), so the preprocessing cost is negligible next to the scan
itself, and a fresh table sidesteps any question of staleness against
a haystack that keeps changing under splices.
*/
package search

import "github.com/shicks/endo/base"

// Haystack is the minimal cursor-shaped contract Find needs: random
// access by absolute position plus a length. rope.RopeCursor satisfies
// this without Find ever materializing the whole haystack.
type Haystack interface {
	FullLen() int
	At(i int) base.Base
}

const alphabetSize = 4

// Find returns the first position >= start at which needle occurs in
// hay, scanning with Boyer–Moore. ok is false if there is no such
// occurrence before the haystack runs out.
func Find(hay Haystack, needle []base.Symbol, start int) (int, bool) {
	n := len(needle)
	if n == 0 {
		if start < 0 {
			start = 0
		}
		if start > hay.FullLen() {
			return 0, false
		}
		return start, true
	}

	badSymbol := buildBadSymbolTable(needle)
	goodSuffix := buildGoodSuffixTable(needle)

	full := hay.FullLen()
	if start < 0 {
		start = 0
	}

	i := start
	for i+n <= full {
		j := n - 1
		for j >= 0 && needle[j] == hay.At(i+j).Symbol() {
			j--
		}
		if j < 0 {
			return i, true
		}
		shiftBad := j - badSymbol[hay.At(i+j).Symbol()]
		shiftGood := goodSuffix[j+1]
		shift := shiftBad
		if shiftGood > shift {
			shift = shiftGood
		}
		if shift < 1 {
			shift = 1
		}
		i += shift
	}
	return 0, false
}

// buildBadSymbolTable maps each symbol to the rightmost index it
// occurs at in needle, or -1 if it does not occur at all.
func buildBadSymbolTable(needle []base.Symbol) [alphabetSize]int {
	var table [alphabetSize]int
	for i := range table {
		table[i] = -1
	}
	for i, sym := range needle {
		table[sym] = i
	}
	return table
}

// buildGoodSuffixTable computes, for each mismatch position j, how far
// the needle can shift right so that the already-matched suffix
// needle[j+1:] realigns with an earlier occurrence of itself (or a
// matching prefix), per the standard Boyer–Moore good-suffix rule.
func buildGoodSuffixTable(needle []base.Symbol) []int {
	n := len(needle)
	shift := make([]int, n+1)
	borderPos := make([]int, n+1)

	i, j := n, n+1
	borderPos[i] = j
	for i > 0 {
		for j <= n && needle[i-1] != needle[j-1] {
			if shift[j] == 0 {
				shift[j] = j - i
			}
			j = borderPos[j]
		}
		i--
		j--
		borderPos[i] = j
	}

	j = borderPos[0]
	for i := 0; i <= n; i++ {
		if shift[i] == 0 {
			shift[i] = j
		}
		if i == j {
			j = borderPos[j]
		}
	}
	return shift
}
