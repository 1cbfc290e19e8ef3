// Package sqrt computes square roots with the classical averaging
// (Babylonian) iteration used by calculators without a hardware root.
//
// The iteration starts from x/10, a one-digit right shift on a decimal
// machine, and stops once two successive iterates differ by no more than
// the configured absolute tolerance. The number of steps is capped so
// that inputs which never settle report [core.ErrNoConvergence] instead
// of looping forever.
package sqrt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-calc/calc/core"
)

// Result is a square root together with the number of averaging steps
// it took.
type Result struct {
	Value      float64
	Iterations int
}

// Solver runs the averaging iteration with fixed stopping rules.
// A Solver is immutable and safe for concurrent use.
type Solver struct {
	tol     float64
	maxIter int
}

// New returns a solver using the tolerance and iteration cap options.
func New(opts ...core.Option) *Solver {
	cfg := core.ApplyOptions(opts...)
	return &Solver{tol: cfg.Tolerance, maxIter: cfg.MaxIterations}
}

// Solve returns the square root of x and the iteration count.
//
// The stopping tolerance is absolute: the result is within about the
// tolerance of the true root, which says nothing about relative accuracy
// once the root itself is below the tolerance. Solve(1e-40) returns a
// value near 5e-16, not 1e-20.
//
// Special cases are:
//
//	Solve(x < 0) = core.ErrDomain
//	Solve(NaN) = core.ErrDomain
//	Solve(0) = 0
//	Solve(+Inf) = +Inf
func (s *Solver) Solve(x float64) (Result, error) {
	switch {
	case math.IsNaN(x) || x < 0:
		return Result{}, fmt.Errorf("sqrt: sqrt of %g: %w", x, core.ErrDomain)
	case x == 0:
		return Result{}, nil
	case math.IsInf(x, 1):
		return Result{Value: x}, nil
	}

	r := x / 10
	if r == 0 {
		// The shift underflowed a subnormal input.
		r = x
	}

	prev := math.NaN()
	for i := 1; i <= s.maxIter; i++ {
		last := r
		r = (last + x/last) / 2
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return Result{Iterations: i}, fmt.Errorf("sqrt: sqrt of %g diverged: %w", x, core.ErrNoConvergence)
		}
		// A return to the iterate two steps back is a rounding cycle
		// between neighbouring floats: nothing further can be gained.
		if math.Abs(last-r) <= s.tol || r == prev {
			return Result{Value: r, Iterations: i}, nil
		}
		prev = last
	}

	return Result{Value: r, Iterations: s.maxIter},
		fmt.Errorf("sqrt: sqrt of %g after %d iterations: %w", x, s.maxIter, core.ErrNoConvergence)
}

// Sqrt returns the square root of x.
func (s *Solver) Sqrt(x float64) (float64, error) {
	res, err := s.Solve(x)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

var std = New()

// Sqrt returns the square root of x using the default stopping rules.
func Sqrt(x float64) (float64, error) { return std.Sqrt(x) }
