package domain

import "testing"

var sample = Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestNewMarksGivensFixed(t *testing.T) {
	b := New(sample)
	for i := range b.Cells {
		r, c := Coord(i)
		switch {
		case sample[r][c] != 0:
			if b.Cells[i].Kind != Fixed || b.Cells[i].Value != sample[r][c] {
				t.Fatalf("cell (%d,%d): got kind=%d value=%d, want Fixed %d",
					r, c, b.Cells[i].Kind, b.Cells[i].Value, sample[r][c])
			}
		default:
			if b.Cells[i].Kind != Blank {
				t.Fatalf("cell (%d,%d): got kind=%d, want Blank", r, c, b.Cells[i].Kind)
			}
		}
	}
}

func TestInitOpensAllCandidates(t *testing.T) {
	b := New(sample)
	b.Init()
	for i := range b.Cells {
		cell := b.Cells[i]
		if cell.Kind == Fixed {
			continue
		}
		if cell.Kind != Superposition {
			t.Fatalf("cell %d: kind = %d after Init", i, cell.Kind)
		}
		if n := cell.CandidateCount(); n != Size {
			t.Fatalf("cell %d: %d candidates after Init, want %d", i, n, Size)
		}
	}
}

func TestSolvedAndGridRoundTrip(t *testing.T) {
	b := New(sample)
	if b.Solved() {
		t.Fatal("board with blanks reported solved")
	}
	if got := b.Grid(); got != sample {
		t.Fatalf("Grid() = %v, want input grid", got)
	}

	var full Grid
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			full[r][c] = uint8((r*BlockSize+r/BlockSize+c)%Size + 1)
		}
	}
	if fb := New(full); !fb.Solved() {
		t.Fatal("fully given board not reported solved")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(sample)
	b.Init()
	clone := b.Clone()
	clone.Cells[2] = Cell{Kind: Collapsed, Value: 4}
	if b.Cells[2].Kind != Superposition {
		t.Fatal("mutating a clone changed the parent board")
	}
}

func TestSoleCandidateCollapse(t *testing.T) {
	var cell Cell
	cell.Kind = Superposition
	cell.Candidates[6] = true // digit 7
	v, ok := cell.SoleCandidate()
	if !ok || v != 7 {
		t.Fatalf("SoleCandidate() = (%d,%v), want (7,true)", v, ok)
	}

	cell.Candidates[0] = true
	if _, ok := cell.SoleCandidate(); ok {
		t.Fatal("two candidates reported as sole")
	}

	cell.Candidates = [Size]bool{}
	if _, ok := cell.SoleCandidate(); ok {
		t.Fatal("empty candidate set reported as sole")
	}
	if n := cell.CandidateCount(); n != 0 {
		t.Fatalf("CandidateCount() = %d for contradiction, want 0", n)
	}

	fixed := Cell{Kind: Fixed, Value: 5}
	if n := fixed.CandidateCount(); n != -1 {
		t.Fatalf("CandidateCount() = %d for fixed cell, want -1", n)
	}
}

func TestParseGrid(t *testing.T) {
	line := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	g, err := ParseGrid(line)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g != sample {
		t.Fatalf("ParseGrid = %v, want sample grid", g)
	}

	if _, err := ParseGrid(".2......."); err == nil {
		t.Fatal("short line accepted")
	}
	bad := "x30070000600195000098000060800060003400803001700020006060000280000419005000080079"
	if _, err := ParseGrid(bad); err == nil {
		t.Fatal("invalid character accepted")
	}
}
