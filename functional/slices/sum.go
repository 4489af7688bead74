// Package slices provides generic slice utility functions.
package slices

import "golang.org/x/exp/constraints"

// Number is any type which supports IEEE-754 or integer addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the summation of the elements in the provided slice.
//
// NOTE: Elements are accumulated strictly left to right starting from the zero value, for floating point types this
// means the rounding of the result is determined by the slice order.
func Sum[S ~[]E, E Number](s S) E {
	var total E

	for _, e := range s {
		total += e
	}

	return total
}
