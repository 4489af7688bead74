// Package maths exposes the numeric operations of the excel utilities.
package maths

import "github.com/excel-wasm/excel/functional/slices"

// Sum returns the IEEE-754 sum of the given numbers accumulated left to right, starting from zero.
//
// An empty (or nil) slice sums to zero. A NaN element, or infinities of opposite sign, result in NaN; infinities of
// a single sign result in that infinity. The slice is neither modified nor retained.
func Sum(numbers []float64) float64 {
	return slices.Sum(numbers)
}
