// Package dsu implements a disjoint-set forest (union-find) over the
// integer elements 0..n-1.
//
// What:
//
//   - New(n) creates n singleton sets, each its own representative.
//   - Find(x) returns the representative of the set containing x.
//   - Union(x, y) merges the sets containing x and y.
//
// How:
//
//   - Find walks to the root iteratively and applies path halving, so deep
//     trees never recurse and repeated queries flatten the forest.
//   - Union attaches the root of the lower-rank tree under the root of the
//     higher-rank tree. On a tie the second root goes under the first and
//     the first root's rank grows by one.
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  O(α(n)) amortized.
//   - Union: O(α(n)) amortized.
//
// The identity of a merged set's representative is an implementation detail.
// Callers should compare representatives for equality and nothing else.
//
// Errors:
//
//   - ErrInvalidSize: New was called with n < 0.
//
// Indices outside [0, n) passed to Find or Union are a programming error
// and fault with an index-out-of-range panic.
package dsu
