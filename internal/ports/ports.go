package ports

import (
	"context"
	"time"

	"svw.info/sudoku-wfc/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	// Branches counts speculative backtracking branches explored;
	// zero means propagation alone solved the puzzle.
	Branches int
	Duration time.Duration
}

// Solver produces a completed grid from a puzzle grid.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step, if one exists.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
