package maths

import (
	"math"

	"github.com/excel-wasm/excel/log"
)

// Accumulator is a running version of 'Sum' for callers which receive values incrementally; adding the elements of a
// slice in order, in any number of calls, produces exactly the same result as calling 'Sum' on that slice.
//
// The zero value of Accumulator is ready for use.
//
// NOTE: Accumulator is not safe for concurrent use.
type Accumulator struct {
	sum       float64
	count     int
	nonFinite bool
}

// Add folds the given values into the running sum, in order, and returns the new sum.
func (a *Accumulator) Add(values ...float64) float64 {
	for _, value := range values {
		a.sum += value
		a.count++

		if a.nonFinite || !(math.IsNaN(a.sum) || math.IsInf(a.sum, 0)) {
			continue
		}

		a.nonFinite = true

		log.Debugf("(Maths) Running sum became %v after adding element %d with value %v", a.sum, a.count-1, value)
	}

	return a.sum
}

// Sum returns the running sum.
func (a *Accumulator) Sum() float64 {
	return a.sum
}

// Count returns the number of values added since creation or the last reset.
func (a *Accumulator) Count() int {
	return a.count
}

// Reset returns the accumulator to its zero value.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
