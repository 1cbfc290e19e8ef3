// Package errstat summarizes approximation errors.
//
// The input is a vector of differences between a computed value and a
// reference value (absolute or relative). Besides the usual moments the
// summary reports the number of decimal digits of agreement, the natural
// unit for a calculator that works one decimal digit at a time.
package errstat

import "math"

// Stats holds error statistics.
type Stats struct {
	Length    int
	Mean      float64 // bias
	RMS       float64
	MaxAbs    float64
	MaxAbsPos int
	Min       float64
	Max       float64
	Variance  float64
	Digits    float64 // -log10(MaxAbs)
}

// Digits converts a maximum absolute error into decimal digits of
// agreement. Returns +Inf for a zero error.
func Digits(maxAbs float64) float64 {
	a := math.Abs(maxAbs)
	if a == 0 {
		return math.Inf(1)
	}
	return -math.Log10(a)
}

func emptyStats() Stats {
	return Stats{Digits: math.Inf(1)}
}

// Calculate computes all statistics in a single pass.
func Calculate(errs []float64) Stats {
	var acc Accumulator
	acc.Update(errs)
	return acc.Result()
}

// RMS returns the root-mean-square error.
func RMS(errs []float64) float64 {
	if len(errs) == 0 {
		return 0
	}

	var sumSq float64
	for _, e := range errs {
		sumSq += e * e
	}

	return math.Sqrt(sumSq / float64(len(errs)))
}

// MaxAbs returns the largest absolute error and its index.
// Returns (0, -1) for an empty slice.
func MaxAbs(errs []float64) (float64, int) {
	pos := -1
	peak := 0.0
	for i, e := range errs {
		if a := math.Abs(e); pos < 0 || a > peak {
			peak = a
			pos = i
		}
	}
	return peak, pos
}

// Accumulator collects error statistics across several blocks, for
// example across the functions of one calculator. It yields results
// identical to [Calculate] on the concatenated input.
type Accumulator struct {
	n       int
	mean    float64
	m2      float64
	sumSq   float64
	maxAbs  float64
	maxPos  int
	minVal  float64
	maxVal  float64
	hasData bool
}

// Update adds a block of errors to the running statistics.
func (a *Accumulator) Update(errs []float64) {
	for _, e := range errs {
		a.n++
		ni := float64(a.n)

		// Welford update.
		delta := e - a.mean
		a.mean += delta / ni
		a.m2 += delta * (e - a.mean)

		a.sumSq += e * e

		abs := math.Abs(e)
		if !a.hasData {
			a.minVal = e
			a.maxVal = e
			a.maxAbs = abs
			a.maxPos = a.n - 1
			a.hasData = true
			continue
		}
		if e < a.minVal {
			a.minVal = e
		}
		if e > a.maxVal {
			a.maxVal = e
		}
		if abs > a.maxAbs {
			a.maxAbs = abs
			a.maxPos = a.n - 1
		}
	}
}

// Result computes the final statistics from accumulated data.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return emptyStats()
	}

	nf := float64(a.n)
	return Stats{
		Length:    a.n,
		Mean:      a.mean,
		RMS:       math.Sqrt(a.sumSq / nf),
		MaxAbs:    a.maxAbs,
		MaxAbsPos: a.maxPos,
		Min:       a.minVal,
		Max:       a.maxVal,
		Variance:  a.m2 / nf,
		Digits:    Digits(a.maxAbs),
	}
}

// Reset clears the accumulator.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
