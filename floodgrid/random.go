package floodgrid

import (
	"fmt"
	"math"
	"math/rand"
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 uses defaultSeed; any other seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random generates a rows×cols grid. Each cell is flooded with the configured
// probability and gets an elevation drawn uniformly from the configured
// inclusive range. Draws happen in row-major order, flood flag first, so a
// given seed always produces the same grid.
//
// Returns ErrInvalidSize, ErrTooLarge, ErrInvalidProbability or
// ErrInvalidRange on bad input, always before allocating the grid.
// Complexity: O(rows×cols).
func Random(rows, cols int, opts ...Option) (*Grid, error) {
	cfg := newRandomConfig(opts...)
	if err := CheckSize(rows, cols, cfg.maxCells); err != nil {
		return nil, fmt.Errorf("floodgrid: Random: %w", err)
	}
	if cfg.probability < 0 || cfg.probability > 1 {
		return nil, fmt.Errorf("floodgrid: Random: p=%v: %w", cfg.probability, ErrInvalidProbability)
	}
	if cfg.minElevation > cfg.maxElevation {
		return nil, fmt.Errorf("floodgrid: Random: [%d,%d]: %w", cfg.minElevation, cfg.maxElevation, ErrInvalidRange)
	}
	elevation := elevationDraw(cfg.rng, cfg.minElevation, cfg.maxElevation)
	g := &Grid{
		rows:      rows,
		cols:      cols,
		flooded:   make([][]bool, rows),
		elevation: make([][]int, rows),
	}
	for i := 0; i < rows; i++ {
		g.flooded[i] = make([]bool, cols)
		g.elevation[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			g.flooded[i][j] = cfg.rng.Float64() < cfg.probability
			g.elevation[i][j] = elevation()
		}
	}

	return g, nil
}

// elevationDraw returns a uniform sampler over [lo, hi] (lo <= hi).
// Ranges wider than math.MaxInt fall back to a Uint64 modulo draw.
func elevationDraw(rng *rand.Rand, lo, hi int) func() int {
	// Two's-complement difference is exact for any lo <= hi.
	width := uint64(hi) - uint64(lo)
	if width < math.MaxInt {
		span := int(width) + 1
		return func() int { return lo + rng.Intn(span) }
	}
	return func() int {
		v := rng.Uint64()
		if width != math.MaxUint64 {
			v %= width + 1
		}
		return int(uint64(lo) + v)
	}
}
