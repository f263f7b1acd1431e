// Package floodgrid holds the input side of flood-zone analysis: a
// rectangular grid of flood flags paired with an elevation per cell.
//
// What:
//
//   - Grid stores R×C flood flags and R×C integer elevations, deep-copied
//     at construction and immutable afterwards.
//   - New / FromInts build a Grid from caller data and validate its shape.
//   - Random generates a reproducible grid from an explicit seed.
//   - Read parses the plain-text manual-input format.
//
// Cells are addressed as (i, j) = (row, column). The row-major linear index
// of a cell is i*Cols()+j; Index and Coordinate convert between the two.
//
// A grid with zero rows or zero columns is valid and simply has no cells.
//
// Errors:
//
//   - ErrNonRectangular:    rows of differing lengths.
//   - ErrDimensionMismatch: flood and elevation arrays differ in shape.
//   - ErrInvalidCell:       integer flood flag other than 0 or 1.
//   - ErrInvalidSize:       negative dimensions passed to Random.
//   - ErrInvalidProbability / ErrInvalidRange: bad Random options.
//   - ErrMalformedInput:    truncated or non-numeric text input.
package floodgrid
