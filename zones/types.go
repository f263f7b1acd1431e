package zones

import "errors"

// NoZone marks a cell that is not flooded and therefore belongs to no zone.
const NoZone = -1

// ErrNilGrid indicates Detect was called without a grid.
var ErrNilGrid = errors.New("zones: grid is nil")

// Grid is the read-only view of the input the detector needs.
// *floodgrid.Grid satisfies it.
type Grid interface {
	Rows() int
	Cols() int
	FloodedAt(i, j int) bool
	ElevationAt(i, j int) int
	InBounds(i, j int) bool
}

// Stats aggregates one zone.
type Stats struct {
	Size         int // number of cells, always ≥ 1 for a detected zone
	ElevationSum int // sum of the cells' elevations
}

// AverageElevation returns ElevationSum / Size as a float64.
// A zero Size yields 0.
func (s Stats) AverageElevation() float64 {
	if s.Size == 0 {
		return 0
	}
	return float64(s.ElevationSum) / float64(s.Size)
}

// Zone pairs a zone id with its statistics.
type Zone struct {
	ID int
	Stats
}

// Result is the read-only outcome of one detection.
type Result struct {
	rows, cols int
	zoneMap    [][]int
	stats      map[int]Stats
}

// neighbors are the 4-connected offsets: up, down, left, right.
var neighbors = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
