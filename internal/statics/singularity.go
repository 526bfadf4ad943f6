// Package statics solves support reactions and internal load
// distributions for a simply supported rotating shaft using
// singularity-function superposition.
package statics

import "math"

// Macaulay evaluates the singularity bracket <x-a>^n: zero for x < a,
// 1 for n = 0, (x-a) for n = 1 and (x-a)^n for n >= 2. A point force
// contributes a step (n=0) to shear and a ramp (n=1) to bending moment,
// active only beyond its position.
func Macaulay(x, a float64, n int) float64 {
	if x < a {
		return 0
	}
	switch {
	case n == 0:
		return 1
	case n == 1:
		return x - a
	case n >= 2:
		return math.Pow(x-a, float64(n))
	}
	// Negative orders (doublets/impulses) do not occur in this model.
	return 0
}

// Linspace returns count evenly spaced samples from start to stop
// inclusive.
func Linspace(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	x := make([]float64, count)
	if count == 1 {
		x[0] = start
		return x
	}
	step := (stop - start) / float64(count-1)
	for i := range x {
		x[i] = start + float64(i)*step
	}
	return x
}
