// Package render draws a board as a 3x3-grouped ASCII grid, one glyph per
// cell: givens green, deduced values yellow, unresolved cells a red plus,
// blanks a space.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"svw.info/sudoku-wfc/internal/domain"
)

const rowSep = "+-------+-------+-------+"

var (
	given      = color.New(color.FgGreen)
	deduced    = color.New(color.FgYellow)
	unresolved = color.New(color.FgRed)
)

func glyph(c domain.Cell) string {
	switch c.Kind {
	case domain.Fixed:
		return given.Sprintf("%d", c.Value)
	case domain.Collapsed:
		return deduced.Sprintf("%d", c.Value)
	case domain.Superposition:
		return unresolved.Sprint("+")
	default:
		return " "
	}
}

// Board writes the grid to w with block separators every three rows and
// columns.
func Board(w io.Writer, b *domain.Board) {
	for r := 0; r < domain.Size; r++ {
		if r%domain.BlockSize == 0 {
			fmt.Fprintln(w, rowSep)
		}
		for c := 0; c < domain.Size; c++ {
			if c%domain.BlockSize == 0 {
				fmt.Fprint(w, "| ")
			}
			fmt.Fprintf(w, "%s ", glyph(b.Cells[domain.Index(r, c)]))
		}
		fmt.Fprintln(w, "|")
	}
	fmt.Fprintln(w, rowSep)
}

// Grid renders raw puzzle values the same way, without solver state.
func Grid(w io.Writer, g domain.Grid) {
	Board(w, domain.New(g))
}
