package trig

import "math"

const twoPi = 2 * math.Pi

// ReduceRange returns the angle equivalent to x in [0, 2pi).
//
// Large multiples are removed by subtracting 2pi*10^e for decreasing e,
// so the number of subtractions grows with the number of digits of x,
// not with its magnitude. Negative angles are reduced by symmetry.
// Non-finite input yields NaN.
//
// The multiples of 2pi are float64 values, so the absolute error grows
// with x; above about 1e15 no correct digit of the reduced angle remains.
func ReduceRange(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	if x < 0 {
		r := ReduceRange(-x)
		if r == 0 {
			return 0
		}
		if m := twoPi - r; m < twoPi {
			return m
		}
		return math.Nextafter(twoPi, 0)
	}

	if x >= twoPi {
		for e := int(math.Log10(x)); e > 0; {
			step := twoPi * math.Pow10(e)
			if x >= step {
				x -= step
			} else {
				e--
			}
		}
	}

	for x >= twoPi {
		x -= twoPi
	}
	return x
}
