package zones

import "sort"

// Rows returns the number of rows of the analysed grid.
func (r *Result) Rows() int { return r.rows }

// Cols returns the number of columns of the analysed grid.
func (r *Result) Cols() int { return r.cols }

// ZoneAt returns the zone id of cell (i,j), or NoZone for a dry cell.
// Panics when (i,j) is out of bounds.
func (r *Result) ZoneAt(i, j int) int { return r.zoneMap[i][j] }

// ZoneCount returns the number of distinct zones.
func (r *Result) ZoneCount() int { return len(r.stats) }

// ZoneMap returns a copy of the rows×cols zone-id grid.
func (r *Result) ZoneMap() [][]int {
	out := make([][]int, len(r.zoneMap))
	for i, row := range r.zoneMap {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// ZoneStats returns a copy of the zone id → Stats mapping.
func (r *Result) ZoneStats() map[int]Stats {
	out := make(map[int]Stats, len(r.stats))
	for id, st := range r.stats {
		out[id] = st
	}
	return out
}

// Stats returns the statistics of zone id and whether that zone exists.
func (r *Result) Stats(id int) (Stats, bool) {
	st, ok := r.stats[id]
	return st, ok
}

// ZoneIDs returns all zone ids in ascending order.
func (r *Result) ZoneIDs() []int {
	ids := make([]int, 0, len(r.stats))
	for id := range r.stats {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Zones returns every zone with its statistics, ordered by ascending id.
func (r *Result) Zones() []Zone {
	ids := r.ZoneIDs()
	out := make([]Zone, len(ids))
	for k, id := range ids {
		out[k] = Zone{ID: id, Stats: r.stats[id]}
	}
	return out
}

// Largest returns the id of the zone with the most cells. Ties go to the
// smallest id. ok is false when no zone was detected.
func (r *Result) Largest() (id int, ok bool) {
	best := -1
	for _, z := range r.Zones() {
		if z.Size > best {
			id, best, ok = z.ID, z.Size, true
		}
	}
	return id, ok
}
