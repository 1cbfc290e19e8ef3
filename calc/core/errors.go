package core

import "errors"

var (
	// ErrDomain reports an input outside the function's domain.
	ErrDomain = errors.New("input outside function domain")
	// ErrOutOfRange reports an input whose result cannot be represented.
	ErrOutOfRange = errors.New("input out of range")
	// ErrUndefined reports an input where the function is undefined,
	// such as tan at an odd multiple of pi/2.
	ErrUndefined = errors.New("function undefined at input")
	// ErrNoConvergence reports an iteration that did not settle.
	ErrNoConvergence = errors.New("iteration did not converge")
)

// Sentinel returns v, or 0 if err is non-nil.
func Sentinel(v float64, err error) float64 {
	if err != nil {
		return 0
	}
	return v
}
