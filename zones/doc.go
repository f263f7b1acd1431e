// Package zones labels flood zones: maximal 4-connected groups of flooded
// cells in a grid, together with each zone's size and elevation total.
//
// What:
//
//   - Detect runs one analysis over anything that satisfies Grid.
//   - Result exposes the zone map (zone id per cell, NoZone for dry cells),
//     per-zone statistics and the zone count.
//   - Detector keeps the latest Result for callers that analyse one grid
//     repeatedly.
//
// How:
//
//  1. Union pass: every flooded cell is unioned with each flooded
//     up/down/left/right neighbour in a dsu.DisjointSet sized rows×cols.
//  2. Labeling pass: each flooded cell is mapped to the representative of
//     its set; the representative's size and elevation sum are accumulated.
//
// A zone id is the row-major index of some cell of the zone. Which cell is
// chosen depends on union order and carries no meaning beyond identity.
//
// Every detection starts from fresh state, so running it again on the same
// grid yields the same partition and never double-counts statistics.
//
// Complexity: O(R×C·α(R×C)) time, O(R×C) memory.
package zones
