// Package solver implements a wave-function-collapse style Sudoku solver:
// constraint propagation plus pure-negative deduction drive the board toward
// a fixed point, and recursive backtracking over board clones finishes the
// puzzles that elimination alone cannot.
package solver

import "svw.info/sudoku-wfc/internal/domain"

// Propagate removes the determined value at idx from the candidate sets of
// every peer in the same row, column and 3x3 block. Cells that are not in
// superposition are left alone. Idempotent; never collapses a cell itself.
func Propagate(b *domain.Board, idx int) {
	cell := b.Cells[idx]
	if !cell.Determined() {
		return
	}
	bit := int(cell.Value) - 1

	rowStart := domain.RowStart(idx)
	for i := rowStart; i < rowStart+domain.Size; i++ {
		clearCandidate(b, i, bit)
	}

	for i := domain.ColStart(idx); i < domain.GridSize; i += domain.Size {
		clearCandidate(b, i, bit)
	}

	row, col := domain.Coord(domain.BlockStart(idx))
	for r := row; r < row+domain.BlockSize; r++ {
		for c := col; c < col+domain.BlockSize; c++ {
			clearCandidate(b, domain.Index(r, c), bit)
		}
	}
}

func clearCandidate(b *domain.Board, idx, bit int) {
	if b.Cells[idx].Kind == domain.Superposition {
		b.Cells[idx].Candidates[bit] = false
	}
}

// deduceSoleHolder applies pure-negative deduction at idx: if, for some
// still-possible digit, no other superposition cell in the row (or column,
// or block) can hold that digit, this cell must hold it and collapses.
// Candidates are tried in ascending digit order, groups row before column
// before block; the first hit wins. No-op for determined cells.
func deduceSoleHolder(b *domain.Board, idx int) {
	cell := b.Cells[idx]
	if cell.Kind != domain.Superposition {
		return
	}
	for bit := 0; bit < domain.Size; bit++ {
		if !cell.Candidates[bit] {
			continue
		}

		alternatives := 0
		rowStart := domain.RowStart(idx)
		for i := rowStart; i < rowStart+domain.Size; i++ {
			if i != idx && holdsCandidate(b, i, bit) {
				alternatives++
			}
		}
		if alternatives == 0 {
			b.Cells[idx] = domain.Cell{Kind: domain.Collapsed, Value: uint8(bit + 1)}
			return
		}

		alternatives = 0
		for i := domain.ColStart(idx); i < domain.GridSize; i += domain.Size {
			if i != idx && holdsCandidate(b, i, bit) {
				alternatives++
			}
		}
		if alternatives == 0 {
			b.Cells[idx] = domain.Cell{Kind: domain.Collapsed, Value: uint8(bit + 1)}
			return
		}

		alternatives = 0
		row, col := domain.Coord(domain.BlockStart(idx))
		for r := row; r < row+domain.BlockSize; r++ {
			for c := col; c < col+domain.BlockSize; c++ {
				if i := domain.Index(r, c); i != idx && holdsCandidate(b, i, bit) {
					alternatives++
				}
			}
		}
		if alternatives == 0 {
			b.Cells[idx] = domain.Cell{Kind: domain.Collapsed, Value: uint8(bit + 1)}
			return
		}
	}
}

func holdsCandidate(b *domain.Board, idx, bit int) bool {
	return b.Cells[idx].Kind == domain.Superposition && b.Cells[idx].Candidates[bit]
}

// Solve drives the board to a fully determined state if it can, mutating it
// in place. It alternates a deduction/propagation pass over all cells with a
// single-candidate collapse pass until the board is solved, a cell runs out
// of candidates, or four consecutive iterations make no progress; after a
// stall it backtracks from the first superposition cell, trying each of its
// candidates on a clone and adopting the first clone that solves.
//
// Callers detect failure via b.Solved(); the return value is the number of
// speculative branches explored, zero when propagation alone sufficed.
func Solve(b *domain.Board) (branches int) {
	stalled := 0

	for !b.Solved() {
		for idx := 0; idx < domain.GridSize; idx++ {
			deduceSoleHolder(b, idx)
			Propagate(b, idx)
		}

		collapsed := false
		for idx := 0; idx < domain.GridSize; idx++ {
			if v, ok := b.Cells[idx].SoleCandidate(); ok {
				b.Cells[idx] = domain.Cell{Kind: domain.Collapsed, Value: v}
				deduceSoleHolder(b, idx)
				Propagate(b, idx)
				collapsed = true
			}
			if b.Cells[idx].CandidateCount() == 0 {
				// Contradiction: this branch cannot complete.
				return branches
			}
		}

		if collapsed {
			stalled = 0
		} else {
			stalled++
		}
		if stalled > 3 {
			break
		}
	}

	if b.Solved() {
		return branches
	}

	idx := -1
	for i := 0; i < domain.GridSize; i++ {
		if b.Cells[i].Kind == domain.Superposition {
			idx = i
			break
		}
	}
	if idx < 0 {
		// An unsolved board always has a superposition cell after Init;
		// getting here means the state is corrupt.
		panic("solver: unsolved board with no superposition cell")
	}

	candidates := b.Cells[idx].Candidates
	for bit := 0; bit < domain.Size; bit++ {
		if !candidates[bit] {
			continue
		}
		clone := b.Clone()
		clone.Cells[idx] = domain.Cell{Kind: domain.Collapsed, Value: uint8(bit + 1)}
		branches++
		branches += Solve(clone)
		if clone.Solved() {
			*b = *clone
			return branches
		}
	}
	return branches
}
