// Package core holds the pieces shared by every digit-serial engine:
// error kinds, engine configuration, and the per-call digit accumulator.
//
// All engines report failures through the error kinds defined here and
// callers select them with [errors.Is]:
//
//	v, err := logexp.Ln(x)
//	if errors.Is(err, core.ErrDomain) {
//	    // x <= 0
//	}
//
// [Sentinel] folds an error back into the in-band value 0 that early
// calculators returned for every failure.
package core
