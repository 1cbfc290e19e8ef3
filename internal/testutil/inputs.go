package testutil

import (
	"math"
	"math/rand"
)

// LogSpaced returns n values spaced evenly in log10 between lo and hi
// (both > 0), endpoints included.
func LogSpaced(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	a, b := math.Log10(lo), math.Log10(hi)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, a+step*float64(i))
	}
	return out
}

// LinSpaced returns n values spaced evenly between lo and hi, endpoints
// included.
func LinSpaced(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// DeterministicUniform returns n values drawn uniformly from [lo, hi)
// with a fixed seed for reproducibility.
func DeterministicUniform(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}
