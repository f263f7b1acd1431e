package zones

// Detector analyses one grid and remembers the latest Result.
// Each Detect call rebuilds all state from scratch.
type Detector struct {
	grid Grid
	last *Result
}

// NewDetector binds a Detector to g. The grid is only read.
func NewDetector(g Grid) *Detector {
	return &Detector{grid: g}
}

// Detect runs a fresh detection and stores its Result.
// On error the previous Result is kept.
func (d *Detector) Detect() (*Result, error) {
	res, err := Detect(d.grid)
	if err != nil {
		return nil, err
	}
	d.last = res
	return res, nil
}

// Result returns the latest Result, or nil before the first Detect.
func (d *Detector) Result() *Result { return d.last }

// ZoneMap returns the latest zone map, or nil before the first Detect.
func (d *Detector) ZoneMap() [][]int {
	if d.last == nil {
		return nil
	}
	return d.last.ZoneMap()
}

// ZoneStats returns the latest statistics; empty before the first Detect.
func (d *Detector) ZoneStats() map[int]Stats {
	if d.last == nil {
		return map[int]Stats{}
	}
	return d.last.ZoneStats()
}

// ZoneCount returns the latest zone count; 0 before the first Detect.
func (d *Detector) ZoneCount() int {
	if d.last == nil {
		return 0
	}
	return d.last.ZoneCount()
}
