package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/floodzone/floodgrid"
	"github.com/katalvlaran/floodzone/zones"
)

// printer remembers the first write error so callers can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// FloodMap prints the flood mask of g.
func FloodMap(w io.Writer, g *floodgrid.Grid) error {
	p := &printer{w: w}
	p.printf("\nFlood Map (# = Flooded, . = Safe):\n")
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if g.FloodedAt(i, j) {
				p.printf("# ")
			} else {
				p.printf(". ")
			}
		}
		p.printf("\n")
	}
	return p.err
}

// ElevationMap prints the elevation of every cell of g.
func ElevationMap(w io.Writer, g *floodgrid.Grid) error {
	p := &printer{w: w}
	p.printf("\nElevation Map:\n")
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			p.printf("%3d ", g.ElevationAt(i, j))
		}
		p.printf("\n")
	}
	return p.err
}

// RiskMap prints the last digit of each cell's zone id.
func RiskMap(w io.Writer, res *zones.Result) error {
	p := &printer{w: w}
	p.printf("\nZone Risk Map (Zone ID mod 10):\n")
	for i := 0; i < res.Rows(); i++ {
		for j := 0; j < res.Cols(); j++ {
			if id := res.ZoneAt(i, j); id != zones.NoZone {
				p.printf("%d ", id%10)
			} else {
				p.printf(". ")
			}
		}
		p.printf("\n")
	}
	return p.err
}

// ZoneStats prints one row per zone in ascending id order followed by the
// total number of zones.
func ZoneStats(w io.Writer, res *zones.Result) error {
	p := &printer{w: w}
	p.printf("\n--- Flood Zone Statistics ---\n")
	p.printf("%-10s%-10s%-15s\n", "Zone ID", "Size", "Avg Elevation")
	for _, z := range res.Zones() {
		p.printf("%-10d%-10d%-15.2f\n", z.ID, z.Size, z.AverageElevation())
	}
	p.printf("\nTotal Flood Zones Detected: %d\n", res.ZoneCount())
	return p.err
}

// DetailedZoneMap prints the full zone id of every flooded cell.
func DetailedZoneMap(w io.Writer, res *zones.Result) error {
	p := &printer{w: w}
	p.printf("\nDetailed Zone Mapping (Root IDs):\n")
	for i := 0; i < res.Rows(); i++ {
		for j := 0; j < res.Cols(); j++ {
			if id := res.ZoneAt(i, j); id != zones.NoZone {
				p.printf("%4d", id)
			} else {
				p.printf("   .")
			}
		}
		p.printf("\n")
	}
	return p.err
}

// Report prints the grid and its analysis: flood map, elevation map, risk
// map, statistics and detailed zone map.
func Report(w io.Writer, g *floodgrid.Grid, res *zones.Result) error {
	if err := FloodMap(w, g); err != nil {
		return err
	}
	if err := ElevationMap(w, g); err != nil {
		return err
	}
	if err := RiskMap(w, res); err != nil {
		return err
	}
	if err := ZoneStats(w, res); err != nil {
		return err
	}
	return DetailedZoneMap(w, res)
}
