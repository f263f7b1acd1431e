package floodgrid_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/floodzone/floodgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New / FromInts
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects ragged or mismatched inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		flood [][]bool
		elev  [][]int
		err   error
	}{
		{"RaggedFlood", [][]bool{{true, false}, {true}}, [][]int{{1, 2}, {3, 4}}, floodgrid.ErrNonRectangular},
		{"RaggedElevation", [][]bool{{true}, {false}}, [][]int{{1}, {2, 3}}, floodgrid.ErrNonRectangular},
		{"RowMismatch", [][]bool{{true}}, [][]int{{1}, {2}}, floodgrid.ErrDimensionMismatch},
		{"ColMismatch", [][]bool{{true, true}}, [][]int{{1}}, floodgrid.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := floodgrid.New(tc.flood, tc.elev)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

// TestNew_EmptyIsValid checks that zero-sized grids are accepted.
func TestNew_EmptyIsValid(t *testing.T) {
	g, err := floodgrid.New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Cols())
	assert.Equal(t, 0, g.FloodedCount())
	assert.False(t, g.InBounds(0, 0))

	g, err = floodgrid.New([][]bool{{}, {}}, [][]int{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 0, g.Cols())
}

// TestNew_DeepCopies ensures later mutation of the caller's slices is not observed.
func TestNew_DeepCopies(t *testing.T) {
	flood := [][]bool{{true, false}}
	elev := [][]int{{5, 6}}
	g, err := floodgrid.New(flood, elev)
	require.NoError(t, err)

	flood[0][1] = true
	elev[0][0] = 99
	assert.False(t, g.FloodedAt(0, 1))
	assert.Equal(t, 5, g.ElevationAt(0, 0))
}

// TestFromInts checks 0/1 decoding and rejection of other flag values.
func TestFromInts(t *testing.T) {
	g, err := floodgrid.FromInts([][]int{{1, 0}, {0, 1}}, [][]int{{1, 2}, {3, -4}})
	require.NoError(t, err)
	assert.True(t, g.FloodedAt(0, 0))
	assert.False(t, g.FloodedAt(0, 1))
	assert.True(t, g.FloodedAt(1, 1))
	assert.Equal(t, -4, g.ElevationAt(1, 1)) // negative elevations are legal
	assert.Equal(t, 2, g.FloodedCount())

	_, err = floodgrid.FromInts([][]int{{2}}, [][]int{{1}})
	assert.ErrorIs(t, err, floodgrid.ErrInvalidCell)
}

// TestIndexCoordinate verifies the row-major round trip on a 3×4 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := floodgrid.Random(3, 4, floodgrid.WithSeed(7))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			idx := g.Index(i, j)
			assert.Equal(t, i*4+j, idx)
			gi, gj := g.Coordinate(idx)
			assert.Equal(t, [2]int{i, j}, [2]int{gi, gj})
		}
	}
	assert.True(t, g.InBounds(2, 3))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, -1))
}

//----------------------------------------------------------------------------//
// Random
//----------------------------------------------------------------------------//

// TestRandom_Deterministic ensures the same seed yields the same grid.
func TestRandom_Deterministic(t *testing.T) {
	a, err := floodgrid.Random(8, 9, floodgrid.WithSeed(42))
	require.NoError(t, err)
	b, err := floodgrid.Random(8, 9, floodgrid.WithSeed(42))
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		for j := 0; j < 9; j++ {
			assert.Equal(t, a.FloodedAt(i, j), b.FloodedAt(i, j))
			assert.Equal(t, a.ElevationAt(i, j), b.ElevationAt(i, j))
		}
	}

	// Seed 0 is mapped to the default seed rather than time-based entropy.
	z1, _ := floodgrid.Random(4, 4, floodgrid.WithSeed(0))
	z2, _ := floodgrid.Random(4, 4)
	assert.Equal(t, z1, z2)
}

// TestRandom_Ranges checks elevation bounds and the probability extremes.
func TestRandom_Ranges(t *testing.T) {
	g, err := floodgrid.Random(20, 20, floodgrid.WithSeed(3), floodgrid.WithElevationRange(-5, 5))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			e := g.ElevationAt(i, j)
			assert.GreaterOrEqual(t, e, -5)
			assert.LessOrEqual(t, e, 5)
		}
	}

	all, err := floodgrid.Random(5, 5, floodgrid.WithFloodProbability(1))
	require.NoError(t, err)
	assert.Equal(t, 25, all.FloodedCount())

	none, err := floodgrid.Random(5, 5, floodgrid.WithFloodProbability(0))
	require.NoError(t, err)
	assert.Equal(t, 0, none.FloodedCount())
}

// TestRandom_WideRanges draws from ranges whose width does not fit an int.
func TestRandom_WideRanges(t *testing.T) {
	cases := []struct {
		name     string
		min, max int
	}{
		{"Full", math.MinInt, math.MaxInt},
		{"NegativeToMax", -1, math.MaxInt},
		{"MinToZero", math.MinInt, 0},
		{"SinglePoint", math.MinInt, math.MinInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := floodgrid.Random(6, 6, floodgrid.WithSeed(11), floodgrid.WithElevationRange(tc.min, tc.max))
			require.NoError(t, err)
			for i := 0; i < 6; i++ {
				for j := 0; j < 6; j++ {
					e := g.ElevationAt(i, j)
					assert.GreaterOrEqual(t, e, tc.min)
					assert.LessOrEqual(t, e, tc.max)
				}
			}
		})
	}
}

// TestCheckSize covers overflow, limits and the zero-dimension charge.
func TestCheckSize(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		limit      int
		err        error
	}{
		{"Fits", 3, 4, 12, nil},
		{"NoLimit", 1 << 20, 1 << 20, 0, nil},
		{"Empty", 0, 0, 1, nil},
		{"OverLimit", 3, 5, 14, floodgrid.ErrTooLarge},
		{"TallEmpty", 1 << 40, 0, 1000, floodgrid.ErrTooLarge},
		{"Negative", -1, 2, 0, floodgrid.ErrInvalidSize},
		{"Overflow", math.MaxInt, 2, 0, floodgrid.ErrInvalidSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := floodgrid.CheckSize(tc.rows, tc.cols, tc.limit)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNilGrid checks the nil-safe accessors.
func TestNilGrid(t *testing.T) {
	var g *floodgrid.Grid
	assert.Zero(t, g.Rows())
	assert.Zero(t, g.Cols())
	assert.False(t, g.InBounds(0, 0))
	assert.Zero(t, g.FloodedCount())
}

// TestRandom_Errors covers invalid sizes and options.
func TestRandom_Errors(t *testing.T) {
	_, err := floodgrid.Random(-1, 3)
	assert.ErrorIs(t, err, floodgrid.ErrInvalidSize)
	_, err = floodgrid.Random(2, 2, floodgrid.WithFloodProbability(1.5))
	assert.ErrorIs(t, err, floodgrid.ErrInvalidProbability)
	_, err = floodgrid.Random(2, 2, floodgrid.WithElevationRange(10, 1))
	assert.ErrorIs(t, err, floodgrid.ErrInvalidRange)
	_, err = floodgrid.Random(math.MaxInt/2, 3)
	assert.ErrorIs(t, err, floodgrid.ErrInvalidSize)
	_, err = floodgrid.Random(200000, 200000, floodgrid.WithMaxCells(1000))
	assert.ErrorIs(t, err, floodgrid.ErrTooLarge)
	_, err = floodgrid.Random(1<<40, 0, floodgrid.WithMaxCells(1000))
	assert.ErrorIs(t, err, floodgrid.ErrTooLarge)
	assert.Panics(t, func() { floodgrid.WithRand(nil) })
}

//----------------------------------------------------------------------------//
// Read
//----------------------------------------------------------------------------//

// TestRead parses the manual-input format, including loose whitespace.
func TestRead(t *testing.T) {
	in := "2 3\n1 0 1\n0 1 1\n10 20 30\n40 50   60\n"
	g, err := floodgrid.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.True(t, g.FloodedAt(0, 2))
	assert.False(t, g.FloodedAt(1, 0))
	assert.Equal(t, 50, g.ElevationAt(1, 1))
	assert.Equal(t, 4, g.FloodedCount())
}

// TestRead_Errors covers truncated, non-numeric and invalid inputs.
func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", floodgrid.ErrMalformedInput},
		{"NoCols", "2", floodgrid.ErrMalformedInput},
		{"NotANumber", "1 x", floodgrid.ErrMalformedInput},
		{"Truncated", "1 2\n1 0\n5", floodgrid.ErrMalformedInput},
		{"Negative", "-1 2", floodgrid.ErrInvalidSize},
		{"BadFlag", "1 1\n3\n7", floodgrid.ErrInvalidCell},
		{"HugeHeader", "1 4000000000000000000\n1", floodgrid.ErrTooLarge},
		{"OverflowingHeader", "4000000000 4000000000\n1", floodgrid.ErrInvalidSize},
		{"TallEmptyHeader", "1000000000000 0", floodgrid.ErrTooLarge},
		{"TruncatedLargeHeader", "1000 1000\n1 0 1", floodgrid.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := floodgrid.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestReadLimit checks the explicit limit and the zero-width shape.
func TestReadLimit(t *testing.T) {
	in := "2 2\n1 0\n0 1\n1 2\n3 4\n"
	_, err := floodgrid.ReadLimit(strings.NewReader(in), 3)
	assert.ErrorIs(t, err, floodgrid.ErrTooLarge)

	g, err := floodgrid.ReadLimit(strings.NewReader(in), 4)
	require.NoError(t, err)
	assert.Equal(t, 2, g.FloodedCount())
	assert.Equal(t, 4, g.ElevationAt(1, 1))

	g, err = floodgrid.ReadLimit(strings.NewReader("3 0"), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 0, g.Cols())
}
