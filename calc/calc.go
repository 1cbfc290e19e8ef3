package calc

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-calc/calc/core"
	"github.com/cwbudde/algo-calc/calc/logexp"
	"github.com/cwbudde/algo-calc/calc/sqrt"
	"github.com/cwbudde/algo-calc/calc/trig"
)

// Function names understood by Lookup.
const (
	NameLn   = "ln"
	NameExp  = "exp"
	NameTan  = "tan"
	NameAtan = "atan"
	NameSqrt = "sqrt"
)

// Func is a named engine entry point.
type Func struct {
	Name string
	Eval func(x float64) (float64, error)
}

// Calculator evaluates every function with one shared configuration.
// A Calculator is immutable and safe for concurrent use.
type Calculator struct {
	cfg    core.Config
	logexp *logexp.Engine
	trig   *trig.Engine
	sqrt   *sqrt.Solver
}

// New builds all engines from the same options.
func New(opts ...core.Option) (*Calculator, error) {
	le, err := logexp.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("calc: %w", err)
	}
	tr, err := trig.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("calc: %w", err)
	}
	return &Calculator{
		cfg:    core.ApplyOptions(opts...),
		logexp: le,
		trig:   tr,
		sqrt:   sqrt.New(opts...),
	}, nil
}

var std = mustNew()

func mustNew() *Calculator {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the calculator with default options.
func Default() *Calculator { return std }

// Config returns the configuration the engines were built with.
func (c *Calculator) Config() core.Config { return c.cfg }

// Ln returns the natural logarithm of x.
func (c *Calculator) Ln(x float64) (float64, error) { return c.logexp.Ln(x) }

// Exp returns e**x.
func (c *Calculator) Exp(x float64) (float64, error) { return c.logexp.Exp(x) }

// Tan returns the tangent of x.
func (c *Calculator) Tan(x float64) (float64, error) { return c.trig.Tan(x) }

// Atan returns the arctangent of x.
func (c *Calculator) Atan(x float64) (float64, error) { return c.trig.Atan(x) }

// Sqrt returns the square root of x.
func (c *Calculator) Sqrt(x float64) (float64, error) { return c.sqrt.Sqrt(x) }

// Functions returns all functions in display order.
func (c *Calculator) Functions() []Func {
	return []Func{
		{Name: NameLn, Eval: c.Ln},
		{Name: NameExp, Eval: c.Exp},
		{Name: NameTan, Eval: c.Tan},
		{Name: NameAtan, Eval: c.Atan},
		{Name: NameSqrt, Eval: c.Sqrt},
	}
}

// Lookup returns the function with the given name, ignoring case and
// surrounding space.
func (c *Calculator) Lookup(name string) (Func, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range c.Functions() {
		if f.Name == name {
			return f, true
		}
	}
	return Func{}, false
}

// Inverse returns the name of the function that undoes name, if any.
func Inverse(name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameLn:
		return NameExp, true
	case NameExp:
		return NameLn, true
	case NameTan:
		return NameAtan, true
	case NameAtan:
		return NameTan, true
	}
	return "", false
}
