package storage

import (
	"context"
	"os"
	"testing"

	"svw.info/sudoku-wfc/internal/domain"
)

func testPuzzle(id string) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:        id,
		Name:      "morning puzzle",
		CreatedAt: 1700000000,
	}
	p.Board[0][0] = 5
	p.Fixed[0][0] = true
	return p
}

func TestFSRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := testPuzzle("p1")
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID != p.ID || got.Name != p.Name || got.Board != p.Board || got.Fixed != p.Fixed {
		t.Fatalf("loaded puzzle differs: %+v", got)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "p1" || metas[0].Name != "morning puzzle" {
		t.Fatalf("List = %+v", metas)
	}
}

func TestFSSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("puzzle without ID saved")
	}
}

func TestFSLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("Load missing = %v, want not-exist", err)
	}
}

func TestFSListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/never-created")
	metas, err := s.List(context.Background())
	if err != nil || len(metas) != 0 {
		t.Fatalf("List = %v, %v", metas, err)
	}
}
