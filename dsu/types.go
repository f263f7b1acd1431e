package dsu

import "errors"

// ErrInvalidSize indicates a negative element count was passed to New.
var ErrInvalidSize = errors.New("dsu: element count must be non-negative")

// DisjointSet is a union-find forest over the elements 0..Len()-1.
// It is not safe for concurrent use.
type DisjointSet struct {
	parent []int // parent[x] == x marks a root
	rank   []int // upper bound on the height of the tree rooted at x
	sets   int   // number of disjoint sets currently in the forest
}
