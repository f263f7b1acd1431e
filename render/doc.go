// Package render prints flood grids and zone analyses as plain text.
//
// Every function writes to an io.Writer and returns the first write error.
// Layouts:
//
//   - FloodMap:        "# " for flooded cells, ". " for dry ones.
//   - ElevationMap:    each elevation right-aligned in 3 columns.
//   - RiskMap:         zone id modulo 10 per flooded cell, "." otherwise.
//   - ZoneStats:       fixed-width table of id, size and average elevation.
//   - DetailedZoneMap: full zone ids right-aligned in 4 columns.
//   - Report:          all of the above, in that order.
package render
