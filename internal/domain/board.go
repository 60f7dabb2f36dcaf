package domain

// Grid is the raw 9x9 puzzle shape used for input and on the wire:
// 0 means blank, 1..9 a given clue.
type Grid [Size][Size]uint8

// Board is the solver's working state: 81 cells, row-major. Boards have
// value semantics, so copying one yields a fully independent search branch.
type Board struct {
	Cells [GridSize]Cell
}

// New builds a board from a grid: givens become Fixed, the rest stay Blank.
// Input legality (duplicate givens) is not checked; an inconsistent puzzle
// simply never reaches the solved state.
func New(g Grid) *Board {
	b := &Board{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := g[r][c]; v != 0 {
				b.Cells[Index(r, c)] = Cell{Kind: Fixed, Value: v}
			}
		}
	}
	return b
}

// Init converts every Blank cell into a superposition of all nine digits.
// Must run exactly once, after New and before solving. Fixed cells are
// untouched.
func (b *Board) Init() {
	for i := range b.Cells {
		if b.Cells[i].Kind == Blank {
			cell := Cell{Kind: Superposition}
			for d := range cell.Candidates {
				cell.Candidates[d] = true
			}
			b.Cells[i] = cell
		}
	}
}

// Solved reports whether every cell holds a final value.
func (b *Board) Solved() bool {
	for i := range b.Cells {
		if !b.Cells[i].Determined() {
			return false
		}
	}
	return true
}

// Clone returns an independent copy for speculative search.
func (b *Board) Clone() *Board {
	dup := *b
	return &dup
}

// Grid extracts the current values; undetermined cells read as 0.
func (b *Board) Grid() Grid {
	var g Grid
	for i := range b.Cells {
		if b.Cells[i].Determined() {
			r, c := Coord(i)
			g[r][c] = b.Cells[i].Value
		}
	}
	return g
}

// Givens reports which cells were fixed clues in the input.
func (b *Board) Givens() [Size][Size]bool {
	var f [Size][Size]bool
	for i := range b.Cells {
		if b.Cells[i].Kind == Fixed {
			r, c := Coord(i)
			f[r][c] = true
		}
	}
	return f
}
