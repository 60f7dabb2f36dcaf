package validator

import (
	"context"

	"svw.info/sudoku-wfc/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans rows, columns and boxes with a bitmask per unit and
// collects the coordinates of duplicated values. Blanks are ignored.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < domain.Size; r++ {
		m := 0
		for c := 0; c < domain.Size; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < domain.Size; c++ {
		m := 0
		for r := 0; r < domain.Size; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < domain.BlockSize; br++ {
		for bc := 0; bc < domain.BlockSize; bc++ {
			m := 0
			for dr := 0; dr < domain.BlockSize; dr++ {
				for dc := 0; dc < domain.BlockSize; dc++ {
					r := br*domain.BlockSize + dr
					c := bc*domain.BlockSize + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
