// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// ClipSlice clips each element of values in place so that values[i]
// lies within [min[i], max[i]]. The clipped slice is returned.
func ClipSlice(values, min, max []float64) []float64 {
	if len(values) != len(min) || len(values) != len(max) {
		panic("clipSlice: values, min, and max must have the same length")
	}
	for i := range values {
		values[i] = Clip(values[i], min[i], max[i])
	}
	return values
}
