// Package monoids provides ready-made aggregation contracts for segment
// trees, plus operator actions for the lazy variant.
package monoids

import "math"

// Int64Sum aggregates int64 elements by addition.
type Int64Sum struct{}

// Zero returns the neutral sum.
func (Int64Sum) Zero() int64 { return 0 }

// Add combines two partial sums.
func (Int64Sum) Add(left, right int64) int64 { return left + right }

// Int64Min aggregates int64 elements by minimum.
type Int64Min struct{}

// Zero returns the neutral element for minimum.
func (Int64Min) Zero() int64 { return math.MaxInt64 }

// Add combines two partial minima.
func (Int64Min) Add(left, right int64) int64 {
	if left < right {
		return left
	}
	return right
}

// Int64Max aggregates int64 elements by maximum.
type Int64Max struct{}

// Zero returns the neutral element for maximum.
func (Int64Max) Zero() int64 { return math.MinInt64 }

// Add combines two partial maxima.
func (Int64Max) Add(left, right int64) int64 {
	if left > right {
		return left
	}
	return right
}

// Concat aggregates strings by concatenation.
//
// Concatenation is associative but not commutative, which makes this monoid
// useful for verifying that folds respect sequence order.
type Concat struct{}

// Zero returns the empty string.
func (Concat) Zero() string { return "" }

// Add concatenates left before right.
func (Concat) Add(left, right string) string { return left + right }
