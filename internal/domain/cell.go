package domain

// CellKind discriminates the four states a cell can be in.
type CellKind uint8

const (
	// Blank carries no information; it only exists between construction
	// and Init.
	Blank CellKind = iota
	// Fixed is a given clue, immutable for the puzzle's lifetime.
	Fixed
	// Collapsed is a value the solver deduced.
	Collapsed
	// Superposition tracks which digits remain possible for the cell.
	Superposition
)

// Cell is one square of the board. Value is meaningful for Fixed and
// Collapsed cells (1..9); Candidates is meaningful for Superposition cells,
// with Candidates[d-1] reporting whether digit d is still possible.
type Cell struct {
	Kind       CellKind
	Value      uint8
	Candidates [Size]bool
}

// Determined reports whether the cell holds a final value.
func (c Cell) Determined() bool { return c.Kind == Fixed || c.Kind == Collapsed }

// CandidateCount returns the number of digits still possible, or -1 for
// cells not in superposition. A superposition with zero candidates is a
// contradiction.
func (c Cell) CandidateCount() int {
	if c.Kind != Superposition {
		return -1
	}
	n := 0
	for _, ok := range c.Candidates {
		if ok {
			n++
		}
	}
	return n
}

// SoleCandidate returns the only remaining digit of a superposition that has
// been narrowed down to exactly one candidate.
func (c Cell) SoleCandidate() (uint8, bool) {
	if c.Kind != Superposition {
		return 0, false
	}
	count, value := 0, 0
	for i, ok := range c.Candidates {
		if ok {
			count++
			value = i + 1
		}
	}
	if count != 1 {
		return 0, false
	}
	return uint8(value), true
}
