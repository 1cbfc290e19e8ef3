// Package calc bundles the digit-serial engines behind one configuration.
//
// The engines emulate how early electronic calculators evaluated
// transcendental functions without floating-point hardware: every result
// is built from repeated additions, subtractions and shifts against a
// short table of constants, one decimal digit per table entry.
//
//   - [logexp]: natural logarithm and exponential
//   - [trig]:   range reduction, tangent and arctangent
//   - [sqrt]:   Babylonian square root
//
// A [Calculator] builds all engines with the same table size and
// stopping rules, and exposes them by name for drivers that iterate over
// functions:
//
//	c, _ := calc.New(core.WithTableSize(10))
//	f, _ := c.Lookup("ln")
//	y, err := f.Eval(12.345)
//
// Every function returns a distinguishable error; [core.Sentinel] folds
// it into the in-band zero those machines displayed on error.
package calc
