package dsu

import "fmt"

// New returns a DisjointSet of n singleton sets.
// Returns ErrInvalidSize (wrapped) if n < 0. n == 0 yields an empty forest.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("dsu: New(%d): %w", n, ErrInvalidSize)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &DisjointSet{
		parent: parent,
		rank:   make([]int, n),
		sets:   n,
	}, nil
}

// Len returns the number of elements in the forest.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Sets returns the number of disjoint sets currently in the forest.
func (d *DisjointSet) Sets() int {
	return d.sets
}

// Find returns the representative of the set containing x.
// Panics if x is outside [0, Len()).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		// Path halving: point x at its grandparent, then step there.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y and reports whether a merge
// happened. It is a no-op returning false when x and y are already joined.
// Panics if x or y is outside [0, Len()).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
