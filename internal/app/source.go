package app

import (
	"context"
	"io"

	"github.com/katalvlaran/floodzone/floodgrid"
)

// Source produces the grid of one run.
type Source interface {
	// Name labels the source in logs and metrics.
	Name() string
	// Load returns the grid to analyse. Grids above maxCells cells must be
	// rejected with floodgrid.ErrTooLarge before they are allocated.
	Load(ctx context.Context, maxCells int) (*floodgrid.Grid, error)
}

// ReaderSource parses a grid in the manual-input text format.
type ReaderSource struct {
	Label  string // e.g. "stdin" or "file"; defaults to "reader"
	Reader io.Reader
}

// Name implements Source.
func (s ReaderSource) Name() string {
	if s.Label == "" {
		return "reader"
	}
	return s.Label
}

// Load implements Source.
func (s ReaderSource) Load(ctx context.Context, maxCells int) (*floodgrid.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return floodgrid.ReadLimit(s.Reader, maxCells)
}

// RandomSource generates a seeded random grid.
type RandomSource struct {
	Rows, Cols       int
	Seed             int64
	FloodProbability float64
	MinElevation     int
	MaxElevation     int
}

// Name implements Source.
func (RandomSource) Name() string { return "random" }

// Load implements Source.
func (s RandomSource) Load(ctx context.Context, maxCells int) (*floodgrid.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return floodgrid.Random(s.Rows, s.Cols,
		floodgrid.WithSeed(s.Seed),
		floodgrid.WithFloodProbability(s.FloodProbability),
		floodgrid.WithElevationRange(s.MinElevation, s.MaxElevation),
		floodgrid.WithMaxCells(maxCells),
	)
}
