// Package trig computes tangent and arctangent with the digit-serial
// rotation method of early calculators.
//
// tan first reduces the angle into [0, 2pi) with [ReduceRange], then
// splits it into whole multiples of atan(1), atan(0.1), atan(0.01), ...
// and replays those fixed rotations on the vector (1, residual). The
// tangent is the ratio of the rotated coordinates.
//
// atan runs the rotation the other way: the vector (1, x) is rotated back
// toward the axis one table angle at a time, and the angles applied are
// summed.
//
// # Usage
//
//	y, err := trig.Tan(0.5)
//	a, err := trig.Atan(y)
package trig
