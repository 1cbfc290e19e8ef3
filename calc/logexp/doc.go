// Package logexp computes natural logarithms and exponentials the way
// early electronic calculators did: one decimal digit at a time, by
// repeated multiplication or subtraction against a short table of
// constants.
//
// ln uses pseudo-multiplication. The mantissa is multiplied by 2, 1.1,
// 1.01, ... for as long as it stays below 10; the count per entry is one
// digit, and the logarithm is the sum of digits times the table logs.
//
// exp runs the same table backwards with pseudo-division. The argument is
// reduced by ln 10, ln 2, ln 1.1, ... for as long as it stays
// non-negative, and the result is rebuilt from the digit counts.
//
// # Usage
//
//	y, err := logexp.Ln(12.345)
//	z, err := logexp.Exp(y)
//
// Precision is set by the table size:
//
//	e, _ := logexp.New(core.WithTableSize(10))
//	y, err := e.Ln(12.345)
package logexp
