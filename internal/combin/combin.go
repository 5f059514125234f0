// Package combin enumerates k-of-n index combinations for the variants
// that pick a qualifying subset of a larger card set at evaluation time
// rather than going through a generated table: Omaha's exactly-2-hole ×
// exactly-3-board split, deuce-to-seven's 6-/7-card best-5 search, and
// badugi's distinct-suit subset search.
//
// Grounded on internal/cgen.go in the cardrank-cardrank teacher repo,
// which generates its combination tables from the same
// gonum.org/v1/gonum/stat/combin package at build time; this package
// calls it at request time instead, since the target module has no code
// generation step.
package combin

import "gonum.org/v1/gonum/stat/combin"

// Combinations returns every k-element subset of {0, 1, ..., n-1}, each
// given as ascending indices.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	return combin.Combinations(n, k)
}
