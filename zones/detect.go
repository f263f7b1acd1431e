package zones

import (
	"fmt"

	"github.com/katalvlaran/floodzone/dsu"
)

// Detect labels the flood zones of g.
//
// Steps:
//  1. Allocate a fresh disjoint-set over rows×cols cells.
//  2. Union every flooded cell with its flooded in-bounds neighbours.
//  3. Map flooded cells to their representative, accumulating Size and
//     ElevationSum per representative; dry cells get NoZone.
//
// An empty grid (zero rows or columns) yields an empty Result.
// Returns ErrNilGrid when g is a nil interface. A typed nil *floodgrid.Grid
// reports zero rows and columns and so yields an empty Result.
// Complexity: O(R×C·α(R×C)) time, O(R×C) memory.
func Detect(g Grid) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	rows, cols := g.Rows(), g.Cols()
	set, err := dsu.New(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("zones: %dx%d grid: %w", rows, cols, err)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !g.FloodedAt(i, j) {
				continue
			}
			for _, d := range neighbors {
				ni, nj := i+d[0], j+d[1]
				if g.InBounds(ni, nj) && g.FloodedAt(ni, nj) {
					set.Union(i*cols+j, ni*cols+nj)
				}
			}
		}
	}

	res := &Result{
		rows:    rows,
		cols:    cols,
		zoneMap: make([][]int, rows),
		stats:   make(map[int]Stats),
	}
	for i := 0; i < rows; i++ {
		res.zoneMap[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			if !g.FloodedAt(i, j) {
				res.zoneMap[i][j] = NoZone
				continue
			}
			root := set.Find(i*cols + j)
			res.zoneMap[i][j] = root
			st := res.stats[root]
			st.Size++
			st.ElevationSum += g.ElevationAt(i, j)
			res.stats[root] = st
		}
	}

	return res, nil
}
