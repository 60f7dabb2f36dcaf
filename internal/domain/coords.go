package domain

// Board geometry, fixed at the standard 9x9 layout with 3x3 blocks.
const (
	BlockSize = 3
	Size      = BlockSize * BlockSize
	GridSize  = Size * Size
)

// Index converts (row, col) to a linear row-major index.
func Index(row, col int) int { return row*Size + col }

// Coord converts a linear index back to (row, col).
func Coord(idx int) (row, col int) { return idx / Size, idx % Size }

// RowStart returns the index of the first cell in idx's row.
func RowStart(idx int) int { return idx / Size * Size }

// ColStart returns the index of the first cell in idx's column; the rest of
// the column follows at strides of Size.
func ColStart(idx int) int { return idx % Size }

// BlockStart returns the index of the top-left cell of idx's 3x3 block.
func BlockStart(idx int) int {
	row, col := Coord(idx)
	row -= row % BlockSize
	col -= col % BlockSize
	return Index(row, col)
}
