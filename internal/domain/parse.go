package domain

import "fmt"

// ParseGrid reads an 81-character puzzle line, row-major. '1'..'9' are
// givens; '0' and '.' are blanks.
func ParseGrid(line string) (Grid, error) {
	var g Grid
	if len(line) != GridSize {
		return g, fmt.Errorf("puzzle line must be %d characters, got %d", GridSize, len(line))
	}
	for i := 0; i < GridSize; i++ {
		switch ch := line[i]; {
		case ch >= '1' && ch <= '9':
			r, c := Coord(i)
			g[r][c] = ch - '0'
		case ch == '0' || ch == '.':
			// blank
		default:
			return g, fmt.Errorf("invalid puzzle character %q at offset %d", ch, i)
		}
	}
	return g, nil
}
