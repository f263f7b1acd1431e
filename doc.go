// Package floodzone finds connected flood zones on a rectangular elevation
// grid and reports how large and how high each zone is.
//
// What is floodzone?
//
//	A small, deterministic toolkit that brings together:
//		• Disjoint sets: union by rank with path halving (dsu/)
//		• Grids: flood mask + elevation, manual text input or seeded random (floodgrid/)
//		• Zone detection: 4-connected labelling with per-zone size & elevation sum (zones/)
//		• Reports: flood, elevation, risk and root-id maps plus a stats table (render/)
//		• Export: zone_map.txt / elevation_map.txt to a directory or S3 bucket (export/)
//
// The floodzone command (cmd/floodzone) wires these together with YAML/env
// configuration, structured logs and Prometheus metrics.
//
// Quick example:
//
//	# # .        zone 0: 3 cells
//	# . .        zone 7: 2 cells
//	. # #
//
//	g, _ := floodgrid.FromInts(
//		[][]int{{1, 1, 0}, {1, 0, 0}, {0, 1, 1}},
//		[][]int{{10, 20, 30}, {30, 0, 0}, {0, 40, 60}},
//	)
//	res, _ := zones.Detect(g)
//	fmt.Println(res.ZoneCount()) // 2
//
// Zone ids are the row-major index of the zone's representative cell, so they
// are stable for a given grid but not contiguous. Dry cells map to zones.NoZone.
package floodzone
