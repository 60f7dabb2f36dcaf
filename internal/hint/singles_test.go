package hint

import (
	"context"
	"testing"

	"svw.info/sudoku-wfc/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// (0,0) sees 1..8 across its row and column, so only 9 fits.
	g := domain.Grid{
		{0, 1, 2, 3, 4, 0, 0, 0, 0},
		{5, 0, 0, 0, 0, 0, 0, 0, 0},
		{6, 0, 0, 0, 0, 0, 0, 0, 0},
		{7, 0, 0, 0, 0, 0, 0, 0, 0},
		{8, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	h, ok, err := NewSingles().Hint(context.Background(), g)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if !ok {
		t.Fatal("no hint found")
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("hint points at %v, want (0,0)", h.Cells)
	}
}

func TestHintNoneOnOpenGrid(t *testing.T) {
	_, ok, err := NewSingles().Hint(context.Background(), domain.Grid{})
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if ok {
		t.Fatal("hint reported for an empty grid")
	}
}
