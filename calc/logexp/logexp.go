package logexp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-calc/calc/core"
	"github.com/cwbudde/algo-calc/calc/table"
)

// MaxExpInput is the largest magnitude accepted by Exp. ln of the largest
// ten-digit calculator value 9.999999999e99 is about 230.
const MaxExpInput = 230

// Engine evaluates ln and exp with tables of a fixed size.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	logs *table.Table
	exps *table.Table
}

// New builds an engine. Only the table size option is used.
func New(opts ...core.Option) (*Engine, error) {
	cfg := core.ApplyOptions(opts...)

	logs, err := table.NewLog(cfg.TableSize)
	if err != nil {
		return nil, fmt.Errorf("logexp: %w", err)
	}
	exps, err := table.NewExp(cfg.TableSize)
	if err != nil {
		return nil, fmt.Errorf("logexp: %w", err)
	}

	return &Engine{logs: logs, exps: exps}, nil
}

// Size returns the number of digits (log table entries) per call.
func (e *Engine) Size() int { return e.logs.Len() }

// ExtractLn runs pseudo-multiplication of a normalized mantissa over every
// log table index. The residual is the final mantissa, just below 10.
func (e *Engine) ExtractLn(mantissa float64) core.Extraction {
	ex := core.NewExtraction(e.logs.Len())
	a := mantissa
	for j := range e.logs.Len() {
		var d int
		a, d = PseudoMultiply(a, e.logs.Multiplier(j))
		ex.SetDigit(j, d)
	}
	ex.SetResidual(a)
	return ex
}

// ExtractExp runs pseudo-division of a non-negative argument over every
// exp table index. Digit 0 counts multiples of ln 10.
func (e *Engine) ExtractExp(x float64) core.Extraction {
	ex := core.NewExtraction(e.exps.Len())
	a := x
	for j := range e.exps.Len() {
		var d int
		a, d = PseudoDivide(a, e.exps.Value(j))
		ex.SetDigit(j, d)
	}
	ex.SetResidual(a)
	return ex
}

// Ln returns the natural logarithm of x.
// It returns core.ErrDomain for x <= 0, NaN and +Inf.
func (e *Engine) Ln(x float64) (float64, error) {
	if !(x > 0) || math.IsInf(x, 1) {
		return 0, fmt.Errorf("logexp: ln of %g: %w", x, core.ErrDomain)
	}

	a, k := Normalize(x)
	ex := e.ExtractLn(a)

	// First-order correction for what the last entry could not reach.
	result := (10 - ex.Residual()) / 10
	// Least significant digit first to keep small terms from vanishing.
	for j := ex.Len() - 1; j >= 0; j-- {
		result += float64(ex.Digit(j)) * e.logs.Value(j)
	}

	kln10 := 0.0
	for range k {
		kln10 += math.Ln10
	}

	return math.Ln10 - result + kln10, nil
}

// Exp returns e**x.
// It returns core.ErrDomain for NaN and core.ErrOutOfRange for |x| > 230.
func (e *Engine) Exp(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("logexp: exp of %g: %w", x, core.ErrDomain)
	}
	if math.Abs(x) > MaxExpInput {
		return 0, fmt.Errorf("logexp: exp of %g: %w", x, core.ErrOutOfRange)
	}

	neg := x < 0
	ex := e.ExtractExp(math.Abs(x))
	size := e.exps.Len() - 1

	// Left-align the residual so the reconstruction ends at 0.x.
	result := ex.Residual() * math.Pow10(size-1)
	for j := size; j > 0; j-- {
		m := e.exps.Multiplier(j)
		for range ex.Digit(j) {
			result = result*m + 1
		}
		result /= 10
	}

	result = (result + 0.1) * 10
	for range ex.Digit(0) {
		result *= e.exps.Multiplier(0)
	}

	if neg {
		result = 1 / result
	}
	return result, nil
}

var std = mustNew()

func mustNew() *Engine {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
}

// Ln returns the natural logarithm of x using the default table size.
func Ln(x float64) (float64, error) { return std.Ln(x) }

// Exp returns e**x using the default table size.
func Exp(x float64) (float64, error) { return std.Exp(x) }
