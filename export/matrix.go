package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/floodzone/floodgrid"
	"github.com/katalvlaran/floodzone/zones"
)

// WriteMatrix writes m in the flat text format. rows×cols are taken from
// len(m) and len(m[0]); an empty m writes "0 0". Ragged input is rejected
// with floodgrid.ErrNonRectangular before anything is written.
func WriteMatrix(w io.Writer, m [][]int) error {
	cols := 0
	if len(m) > 0 {
		cols = len(m[0])
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("export: row %d has %d values, want %d: %w", i, len(row), cols, floodgrid.ErrNonRectangular)
		}
	}
	return writeCells(w, len(m), cols, func(i, j int) int { return m[i][j] })
}

// WriteZoneMap writes the zone id grid of res.
func WriteZoneMap(w io.Writer, res *zones.Result) error {
	return writeCells(w, res.Rows(), res.Cols(), res.ZoneAt)
}

// WriteElevation writes the elevation grid of g.
func WriteElevation(w io.Writer, g *floodgrid.Grid) error {
	return writeCells(w, g.Rows(), g.Cols(), g.ElevationAt)
}

func writeCells(w io.Writer, rows, cols int, at func(i, j int) int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)

	buf = strconv.AppendInt(buf[:0], int64(rows), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(cols), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			buf = strconv.AppendInt(buf[:0], int64(at(i, j)), 10)
			buf = append(buf, ' ')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadMatrix parses the flat text format back into a rows×cols matrix.
// Tokens may be separated by any whitespace. Extra trailing values are
// ignored, as the plotting tools do. The header is checked with
// floodgrid.CheckSize against floodgrid.DefaultMaxCells before any value is
// read, and storage grows with the values actually present.
// Returns ErrMalformedInput for a bad header or too few values.
func ReadMatrix(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("export: unexpected end of input: %w", ErrMalformedInput)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("export: value %q: %w", sc.Text(), ErrMalformedInput)
		}
		return v, nil
	}

	rows, err := next()
	if err != nil {
		return nil, err
	}
	cols, err := next()
	if err != nil {
		return nil, err
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("export: header %d %d: %w", rows, cols, ErrMalformedInput)
	}
	if err := floodgrid.CheckSize(rows, cols, floodgrid.DefaultMaxCells); err != nil {
		return nil, fmt.Errorf("export: header: %w", err)
	}

	cells := rows * cols
	vals := make([]int, 0, min(cells, 4096))
	for k := 0; k < cells; k++ {
		v, err := next()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}

	m := make([][]int, rows)
	for i := range m {
		m[i] = vals[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return m, nil
}
