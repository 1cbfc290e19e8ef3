// Package accuracy measures digit-serial engines against reference
// implementations.
//
// A [Reference] evaluates a function by name. Three are provided:
//
//   - [Stdlib]:  the float64 functions of package math
//   - [Decimal]: decimal arithmetic at a chosen precision (ln, exp, sqrt)
//   - [Fast]:    fast polynomial approximations (ln, exp, sqrt)
//
// [Compare] evaluates an engine over a set of inputs and reports each
// row alongside error statistics. [RoundTrip] checks that a function
// and its inverse reproduce the input.
//
// # Usage
//
//	c := calc.Default()
//	f, _ := c.Lookup("ln")
//	rep, err := accuracy.Compare(f.Name, f.Eval, accuracy.Stdlib(), accuracy.DefaultInputs("ln"))
//	fmt.Println(rep.Stats.Digits)
package accuracy
