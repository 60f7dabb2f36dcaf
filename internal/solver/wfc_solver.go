package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-wfc/internal/domain"
	"svw.info/sudoku-wfc/internal/ports"
)

// ErrUnsolvable is returned when no candidate assignment completes the grid.
var ErrUnsolvable = errors.New("no solution found")

// WFC adapts the collapse solver to the ports.Solver interface.
type WFC struct{}

func NewWFC() *WFC { return &WFC{} }

func (s *WFC) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	b := domain.New(g)
	b.Init()
	branches := Solve(b)
	st := ports.Stats{Branches: branches, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return domain.Grid{}, st, err
	}
	if !b.Solved() {
		return domain.Grid{}, st, ErrUnsolvable
	}
	return b.Grid(), st, nil
}
