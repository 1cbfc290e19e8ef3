package trig

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-calc/calc/core"
	"github.com/cwbudde/algo-calc/calc/table"
)

// Engine evaluates tan and atan with a rotation table of fixed size.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	tans *table.Table
}

// New builds an engine. Only the table size option is used.
func New(opts ...core.Option) (*Engine, error) {
	cfg := core.ApplyOptions(opts...)
	tans, err := table.NewTrig(cfg.TableSize)
	if err != nil {
		return nil, fmt.Errorf("trig: %w", err)
	}
	return &Engine{tans: tans}, nil
}

// Size returns the number of table entries.
func (e *Engine) Size() int { return e.tans.Len() }

// ExtractAngle splits a non-negative angle into counts of the table
// angles. The residual is the angle left below the smallest entry.
// Each index subtracts once past zero and adds the entry back, so the
// residual carries an absolute error of about one ulp of atan(1):
// angles below roughly 1e-16 are lost entirely.
func (e *Engine) ExtractAngle(y float64) core.Extraction {
	ex := core.NewExtraction(e.tans.Len())
	for i := range e.tans.Len() {
		a := e.tans.Value(i)
		d := 0
		for y >= 0 {
			y -= a
			d++
		}
		// One step too far; undo it.
		y += a
		d--
		ex.SetDigit(i, d)
	}
	ex.SetResidual(y)
	return ex
}

// Rotate replays the extracted rotations on the vector (1, residual),
// least significant index first, and returns the rotated vector. The
// vector grows in length but its direction is the extracted angle.
func (e *Engine) Rotate(ex core.Extraction) (x, y float64) {
	x, y = 1, ex.Residual()
	for i := ex.Len() - 1; i >= 0; i-- {
		t := e.tans.Multiplier(i)
		for range ex.Digit(i) {
			xt := x * t
			yt := y * t
			x -= yt
			y += xt
		}
	}
	return x, y
}

// ExtractVector rotates the vector (1, v) back toward the x axis, one
// table angle at a time, for as long as y stays non-negative. The digit
// counts say how often each angle was applied; the residual is the
// remaining slope y/x.
func (e *Engine) ExtractVector(v float64) core.Extraction {
	ex := core.NewExtraction(e.tans.Len())
	x, y := 1.0, v
	for i := range e.tans.Len() {
		t := e.tans.Multiplier(i)
		d := 0
		for {
			xt := x * t
			yt := y * t
			if y-xt < 0 {
				break
			}
			x += yt
			y -= xt
			d++
		}
		ex.SetDigit(i, d)
	}
	ex.SetResidual(y / x)
	return ex
}

// Tan returns the tangent of the radian argument x.
// It returns core.ErrDomain for NaN and infinities and core.ErrUndefined
// when the rotated cosine term is exactly zero, as at pi/2. The error is
// absolute near zero (see ExtractAngle) and grows with |x| through
// ReduceRange.
func (e *Engine) Tan(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("trig: tan of %g: %w", x, core.ErrDomain)
	}

	neg := x < 0
	ex := e.ExtractAngle(ReduceRange(math.Abs(x)))
	c, s := e.Rotate(ex)
	if c == 0 {
		return 0, fmt.Errorf("trig: tan of %g: %w", x, core.ErrUndefined)
	}

	result := s / c
	if neg {
		result = -result
	}
	return result, nil
}

// Atan returns the arctangent, in radians, of x.
// It returns core.ErrDomain for NaN.
func (e *Engine) Atan(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, fmt.Errorf("trig: atan of %g: %w", x, core.ErrDomain)
	case math.IsInf(x, 0):
		return math.Copysign(math.Pi/2, x), nil
	}

	neg := x < 0
	ex := e.ExtractVector(math.Abs(x))

	result := ex.Residual()
	for j := ex.Len() - 1; j >= 0; j-- {
		result += float64(ex.Digit(j)) * e.tans.Value(j)
	}

	if neg {
		result = -result
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

// Tan returns the tangent of x using the default table size.
func Tan(x float64) (float64, error) { return std.Tan(x) }

// Atan returns the arctangent of x using the default table size.
func Atan(x float64) (float64, error) { return std.Atan(x) }
