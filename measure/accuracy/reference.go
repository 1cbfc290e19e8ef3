package accuracy

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-calc/calc"
)

// DefaultDecimalPrecision is the number of significant digits used by
// Decimal when none is given.
const DefaultDecimalPrecision = 34

// ErrUnsupported reports a function the reference cannot evaluate.
var ErrUnsupported = errors.New("function not supported by reference")

// Reference evaluates named functions for comparison.
type Reference interface {
	Name() string
	Eval(fn string, x float64) (float64, error)
}

type funcTable struct {
	name string
	fns  map[string]func(float64) float64
}

func (f funcTable) Name() string { return f.name }

func (f funcTable) Eval(fn string, x float64) (float64, error) {
	g, ok := f.fns[fn]
	if !ok {
		return 0, fmt.Errorf("accuracy: %s %s: %w", f.name, fn, ErrUnsupported)
	}
	return g(x), nil
}

// Stdlib returns the float64 functions of package math. The logarithm
// splits off the binary exponent first, since math.Log is not reliable
// for subnormal inputs on every platform.
func Stdlib() Reference {
	return funcTable{
		name: "stdlib",
		fns: map[string]func(float64) float64{
			calc.NameLn:   stdlibLog,
			calc.NameExp:  math.Exp,
			calc.NameTan:  math.Tan,
			calc.NameAtan: math.Atan,
			calc.NameSqrt: math.Sqrt,
		},
	}
}

// Fast returns fast approximations. They are less precise than the
// digit-serial engines and show what a polynomial shortcut costs.
func Fast() Reference {
	return funcTable{
		name: "fast",
		fns: map[string]func(float64) float64{
			calc.NameLn:   func(x float64) float64 { return approx.FastLog(x) },
			calc.NameExp:  func(x float64) float64 { return approx.FastExp(x) },
			calc.NameSqrt: func(x float64) float64 { return approx.FastSqrt(x) },
		},
	}
}

func stdlibLog(x float64) float64 {
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return math.Log(x)
	}
	frac, exp := math.Frexp(x)
	return math.Log(frac) + float64(exp)*math.Ln2
}

type decimalRef struct {
	ctx *apd.Context
}

// Decimal returns a reference computing in decimal arithmetic with the
// given number of significant digits (DefaultDecimalPrecision if 0).
// The result is rounded to float64 once, at the end.
func Decimal(precision uint32) Reference {
	if precision == 0 {
		precision = DefaultDecimalPrecision
	}
	return &decimalRef{ctx: apd.BaseContext.WithPrecision(precision)}
}

func (d *decimalRef) Name() string {
	return fmt.Sprintf("decimal%d", d.ctx.Precision)
}

func (d *decimalRef) Eval(fn string, x float64) (float64, error) {
	var op func(res, x *apd.Decimal) (apd.Condition, error)
	switch fn {
	case calc.NameLn:
		op = d.ctx.Ln
	case calc.NameExp:
		op = d.ctx.Exp
	case calc.NameSqrt:
		op = d.ctx.Sqrt
	default:
		return 0, fmt.Errorf("accuracy: %s %s: %w", d.Name(), fn, ErrUnsupported)
	}

	// Shortest formatting would round x to a nearby decimal; keep enough
	// digits to stay on the binary value.
	in := new(apd.Decimal)
	if _, _, err := in.SetString(strconv.FormatFloat(x, 'E', int(d.ctx.Precision)+6, 64)); err != nil {
		return 0, fmt.Errorf("accuracy: %s %s(%g): %w", d.Name(), fn, x, err)
	}
	out := new(apd.Decimal)
	if _, err := op(out, in); err != nil {
		return 0, fmt.Errorf("accuracy: %s %s(%g): %w", d.Name(), fn, x, err)
	}
	return out.Float64()
}

// ParseReference returns the reference with the given name: "stdlib",
// "decimal" or "fast". precision applies to the decimal reference.
func ParseReference(name string, precision uint32) (Reference, error) {
	switch name {
	case "stdlib", "":
		return Stdlib(), nil
	case "decimal":
		return Decimal(precision), nil
	case "fast":
		return Fast(), nil
	}
	return nil, fmt.Errorf("accuracy: unknown reference %q", name)
}
