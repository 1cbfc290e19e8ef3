package accuracy

import (
	"math"

	"github.com/cwbudde/algo-calc/calc"
)

// DefaultInputs returns the demonstration inputs for a function, or nil
// for an unknown name. They cover each engine's edge cases: tiny and huge
// magnitudes, powers of ten, the exp ceiling and the pole of tan.
func DefaultInputs(fn string) []float64 {
	switch fn {
	case calc.NameLn:
		return []float64{0.00000001, 0.001, 1.0, 1.1, 4.4, 9.99, 10, 11, 12.345, 15.873, 25.2332, 1.234e34}
	case calc.NameExp:
		return []float64{
			0, -1, 0.00000001, 0.001, 1.0, 1.1, 4.4, 9.99, 10, 11, 12.345, 15.873,
			25.2332, 87.2332, 1.234e-13, 9.999e-15, 230,
		}
	case calc.NameTan:
		return []float64{0, 0.984736, 0.1, 0.5, 1.5, math.Pi / 2, -1.5, 1.234e5}
	case calc.NameAtan:
		return []float64{0, 1, 20, -20, -12345e23, math.Pi, math.Pi / 2}
	case calc.NameSqrt:
		return []float64{0, 54757, 125348, 0.5, 0.00035, 0.02, 1, 1.234e78}
	}
	return nil
}

// DefaultRelative reports whether errors of fn are best read relative to
// the result: exp and sqrt span many orders of magnitude.
func DefaultRelative(fn string) bool {
	return fn == calc.NameExp || fn == calc.NameSqrt
}
