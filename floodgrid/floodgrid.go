package floodgrid

import (
	"fmt"
	"math"
)

// New constructs a Grid from a flood mask and matching elevations.
// It deep-copies both inputs.
// Returns ErrNonRectangular if either array is ragged and
// ErrDimensionMismatch if their shapes differ.
// Zero rows yield a 0×0 grid; rows of zero length yield an R×0 grid.
// Complexity: O(R×C) time and memory.
func New(flooded [][]bool, elevation [][]int) (*Grid, error) {
	rows, cols, err := shapeOf(len(flooded), func(i int) int { return len(flooded[i]) })
	if err != nil {
		return nil, fmt.Errorf("floodgrid: flood mask: %w", err)
	}
	erows, ecols, err := shapeOf(len(elevation), func(i int) int { return len(elevation[i]) })
	if err != nil {
		return nil, fmt.Errorf("floodgrid: elevation: %w", err)
	}
	if rows != erows || cols != ecols {
		return nil, fmt.Errorf("floodgrid: %dx%d vs %dx%d: %w", rows, cols, erows, ecols, ErrDimensionMismatch)
	}

	g := &Grid{
		rows:      rows,
		cols:      cols,
		flooded:   make([][]bool, rows),
		elevation: make([][]int, rows),
	}
	for i := 0; i < rows; i++ {
		g.flooded[i] = make([]bool, cols)
		copy(g.flooded[i], flooded[i])
		g.elevation[i] = make([]int, cols)
		copy(g.elevation[i], elevation[i])
	}

	return g, nil
}

// FromInts builds a Grid from the 0/1 integer flood mask form.
// Returns ErrInvalidCell for flags other than 0 or 1, plus any New error.
func FromInts(flood [][]int, elevation [][]int) (*Grid, error) {
	mask := make([][]bool, len(flood))
	for i, row := range flood {
		mask[i] = make([]bool, len(row))
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				mask[i][j] = true
			default:
				return nil, fmt.Errorf("floodgrid: cell (%d,%d)=%d: %w", i, j, v, ErrInvalidCell)
			}
		}
	}

	return New(mask, elevation)
}

// shapeOf returns (rows, cols) of a possibly-empty 2D slice, rejecting ragged rows.
func shapeOf(rows int, rowLen func(int) int) (int, int, error) {
	if rows == 0 {
		return 0, 0, nil
	}
	cols := rowLen(0)
	for i := 1; i < rows; i++ {
		if rowLen(i) != cols {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, cols, nil
}

// CheckSize validates a rows×cols shape before anything is allocated for it.
// A zero dimension counts as 1, so a tall empty grid is still charged for its
// rows. Returns ErrInvalidSize for negative or overflowing shapes and
// ErrTooLarge when the count exceeds limit; limit <= 0 means no limit.
func CheckSize(rows, cols, limit int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("floodgrid: %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	r, c := max(rows, 1), max(cols, 1)
	if r > math.MaxInt/c {
		return fmt.Errorf("floodgrid: %dx%d overflows: %w", rows, cols, ErrInvalidSize)
	}
	if limit > 0 && r*c > limit {
		return fmt.Errorf("floodgrid: %dx%d (%d cells, limit %d): %w", rows, cols, r*c, limit, ErrTooLarge)
	}

	return nil
}

// Rows returns the number of rows. A nil *Grid has none.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols returns the number of columns. A nil *Grid has none.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// FloodedAt reports whether cell (i,j) is flooded. Panics when out of bounds.
func (g *Grid) FloodedAt(i, j int) bool { return g.flooded[i][j] }

// ElevationAt returns the elevation of cell (i,j). Panics when out of bounds.
func (g *Grid) ElevationAt(i, j int) int { return g.elevation[i][j] }

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Rows() && j >= 0 && j < g.Cols()
}

// Index maps (i,j) to its row-major index i*Cols()+j.
// Complexity: O(1).
func (g *Grid) Index(i, j int) int {
	return i*g.cols + j
}

// Coordinate converts a row-major index back to (i,j).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (i, j int) {
	return idx / g.cols, idx % g.cols
}

// FloodedCount returns the number of flooded cells.
// Complexity: O(R×C).
func (g *Grid) FloodedCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, row := range g.flooded {
		for _, f := range row {
			if f {
				n++
			}
		}
	}

	return n
}
