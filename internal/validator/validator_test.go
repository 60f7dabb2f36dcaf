package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-wfc/internal/domain"
)

var solved = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestValidateSolvedGrid(t *testing.T) {
	ok, conflicts, err := New().Validate(context.Background(), solved)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !ok || len(conflicts) != 0 {
		t.Fatalf("valid grid rejected: conflicts=%v", conflicts)
	}
}

func TestValidateIgnoresBlanks(t *testing.T) {
	g := solved
	g[4][4] = 0
	g[0][7] = 0
	ok, conflicts, err := New().Validate(context.Background(), g)
	if err != nil || !ok {
		t.Fatalf("partial grid rejected: err=%v conflicts=%v", err, conflicts)
	}
}

func TestValidateFindsDuplicates(t *testing.T) {
	g := solved
	g[0][2] = 5 // duplicates (0,0) in row 0 and box 0

	ok, conflicts, err := New().Validate(context.Background(), g)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if ok {
		t.Fatal("duplicate given not detected")
	}
	found := false
	for _, cc := range conflicts {
		if cc.Row == 0 && cc.Col == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("conflict at (0,2) not reported: %v", conflicts)
	}
}
