package floodgrid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// readChunk caps the up-front capacity of ReadLimit's buffers; they grow
// with the tokens actually present, never with the header alone.
const readChunk = 4096

// Read parses a grid in the manual-input text format:
//
//	rows cols
//	rows×cols flood flags (0 or 1)
//	rows×cols elevations
//
// Tokens are separated by any whitespace, so line breaks are optional.
// Read is ReadLimit with DefaultMaxCells.
func Read(r io.Reader) (*Grid, error) {
	return ReadLimit(r, DefaultMaxCells)
}

// ReadLimit is Read with an explicit cell limit; maxCells <= 0 selects
// DefaultMaxCells. The header is checked with CheckSize before any cell is
// read. Returns ErrMalformedInput for missing or non-numeric tokens,
// ErrInvalidSize or ErrTooLarge for a bad header and ErrInvalidCell for flags
// other than 0 or 1.
func ReadLimit(r io.Reader, maxCells int) (*Grid, error) {
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("missing value: %w", ErrMalformedInput)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%q: %w", sc.Text(), ErrMalformedInput)
		}
		return v, nil
	}

	rows, err := next()
	if err != nil {
		return nil, fmt.Errorf("floodgrid: row count: %w", err)
	}
	cols, err := next()
	if err != nil {
		return nil, fmt.Errorf("floodgrid: column count: %w", err)
	}
	if err := CheckSize(rows, cols, maxCells); err != nil {
		return nil, err
	}

	cells := rows * cols
	readCells := func(what string) ([]int, error) {
		vals := make([]int, 0, min(cells, readChunk))
		for k := 0; k < cells; k++ {
			v, err := next()
			if err != nil {
				return nil, fmt.Errorf("floodgrid: %s (%d,%d): %w", what, k/cols, k%cols, err)
			}
			vals = append(vals, v)
		}
		return vals, nil
	}
	flags, err := readCells("flood flag")
	if err != nil {
		return nil, err
	}
	elevations, err := readCells("elevation")
	if err != nil {
		return nil, err
	}

	g := &Grid{
		rows:      rows,
		cols:      cols,
		flooded:   make([][]bool, rows),
		elevation: make([][]int, rows),
	}
	for i := 0; i < rows; i++ {
		g.flooded[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			switch v := flags[i*cols+j]; v {
			case 0:
			case 1:
				g.flooded[i][j] = true
			default:
				return nil, fmt.Errorf("floodgrid: cell (%d,%d)=%d: %w", i, j, v, ErrInvalidCell)
			}
		}
		g.elevation[i] = elevations[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return g, nil
}
