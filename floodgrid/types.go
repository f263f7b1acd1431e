package floodgrid

import (
	"errors"
	"math/rand"
)

// Sentinel errors for floodgrid operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("floodgrid: all rows must have the same length")
	// ErrDimensionMismatch indicates the flood and elevation arrays differ in shape.
	ErrDimensionMismatch = errors.New("floodgrid: flood and elevation grids must have identical dimensions")
	// ErrInvalidCell indicates an integer flood flag other than 0 or 1.
	ErrInvalidCell = errors.New("floodgrid: flood flag must be 0 or 1")
	// ErrInvalidSize indicates negative grid dimensions.
	ErrInvalidSize = errors.New("floodgrid: grid dimensions must be non-negative")
	// ErrInvalidProbability indicates a flood probability outside [0,1].
	ErrInvalidProbability = errors.New("floodgrid: flood probability out of range")
	// ErrInvalidRange indicates an elevation range with min > max.
	ErrInvalidRange = errors.New("floodgrid: elevation range is empty")
	// ErrMalformedInput indicates text input that does not follow the grid format.
	ErrMalformedInput = errors.New("floodgrid: malformed grid input")
	// ErrTooLarge indicates a grid above the allowed cell count.
	ErrTooLarge = errors.New("floodgrid: grid exceeds cell limit")
)

// DefaultMaxCells bounds ReadLimit when no explicit limit is given.
const DefaultMaxCells = 25_000_000

// Grid is an immutable R×C flood mask with an elevation per cell.
// flooded[i][j] and elevation[i][j] always share the same shape.
type Grid struct {
	rows, cols int
	flooded    [][]bool
	elevation  [][]int
}

// Defaults used by Random, matching the classic generator: a fair coin for
// the flood flag and elevations drawn from 1..100.
const (
	DefaultFloodProbability = 0.5
	DefaultMinElevation     = 1
	DefaultMaxElevation     = 100
)

// defaultSeed replaces a zero seed so that "no seed" is still reproducible.
const defaultSeed int64 = 1

// randomConfig aggregates the knobs of Random.
type randomConfig struct {
	rng          *rand.Rand
	probability  float64
	minElevation int
	maxElevation int
	maxCells     int
}

// Option customizes Random.
type Option func(*randomConfig)

// WithSeed seeds a fresh deterministic RNG. Seed 0 maps to a fixed default.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand injects an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("floodgrid: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithFloodProbability sets the chance that a generated cell is flooded.
// Values outside [0,1] are reported by Random as ErrInvalidProbability.
func WithFloodProbability(p float64) Option {
	return func(c *randomConfig) {
		c.probability = p
	}
}

// WithElevationRange sets the inclusive range of generated elevations.
// min > max is reported by Random as ErrInvalidRange.
func WithElevationRange(min, max int) Option {
	return func(c *randomConfig) {
		c.minElevation, c.maxElevation = min, max
	}
}

// WithMaxCells makes Random fail with ErrTooLarge for grids above n cells,
// before anything is allocated. n <= 0 means no limit.
func WithMaxCells(n int) Option {
	return func(c *randomConfig) {
		c.maxCells = n
	}
}

func newRandomConfig(opts ...Option) randomConfig {
	cfg := randomConfig{
		probability:  DefaultFloodProbability,
		minElevation: DefaultMinElevation,
		maxElevation: DefaultMaxElevation,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}
