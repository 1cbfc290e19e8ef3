package accuracy

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-calc/calc"
	"github.com/cwbudde/algo-calc/calc/core"
)

type identityRef struct{}

func (identityRef) Name() string { return "identity" }

func (identityRef) Eval(fn string, x float64) (float64, error) {
	if fn != "id" {
		return 0, ErrUnsupported
	}
	if x < 0 {
		return 0, errors.New("negative")
	}
	return x, nil
}

func TestCompareAgainstStdlib(t *testing.T) {
	c := calc.Default()

	tests := []struct {
		fn       string
		relative bool
		maxErr   float64
	}{
		{calc.NameLn, false, 1e-10},
		{calc.NameExp, true, 1e-9},
		{calc.NameAtan, false, 1e-12},
		{calc.NameSqrt, true, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			f, ok := c.Lookup(tt.fn)
			if !ok {
				t.Fatalf("Lookup(%q) failed", tt.fn)
			}
			var opts []Option
			if tt.relative {
				opts = append(opts, WithRelative())
			}
			inputs := DefaultInputs(tt.fn)
			rep, err := Compare(tt.fn, f.Eval, Stdlib(), inputs, opts...)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if rep.Failures != 0 {
				t.Fatalf("Failures = %d, want 0", rep.Failures)
			}
			if rep.Stats.Length != len(inputs) {
				t.Fatalf("Stats.Length = %d, want %d", rep.Stats.Length, len(inputs))
			}
			if rep.Stats.MaxAbs > tt.maxErr {
				t.Fatalf("max error %g at %g exceeds %g",
					rep.Stats.MaxAbs, inputs[rep.Stats.MaxAbsPos], tt.maxErr)
			}
			if rep.Relative != tt.relative {
				t.Fatalf("Relative = %v, want %v", rep.Relative, tt.relative)
			}
		})
	}
}

func TestCompareTanRecordsPole(t *testing.T) {
	inputs := DefaultInputs(calc.NameTan)
	rep, err := Compare(calc.NameTan, calc.Default().Tan, Stdlib(), inputs)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if rep.Failures != 1 {
		t.Fatalf("Failures = %d, want 1", rep.Failures)
	}
	if rep.Stats.Length != len(inputs)-1 {
		t.Fatalf("Stats.Length = %d, want %d", rep.Stats.Length, len(inputs)-1)
	}
	for _, r := range rep.Rows {
		if r.X == math.Pi/2 {
			if !errors.Is(r.Err, core.ErrUndefined) {
				t.Fatalf("tan(pi/2) error = %v, want ErrUndefined", r.Err)
			}
			if r.OK() {
				t.Fatal("pole row reported OK")
			}
			continue
		}
		if !r.OK() {
			t.Fatalf("row %g failed: %v", r.X, r.Err)
		}
	}
	if rep.Stats.MaxAbs > 1e-8 {
		t.Fatalf("max error %g exceeds 1e-8", rep.Stats.MaxAbs)
	}
}

func TestCompareDiffSign(t *testing.T) {
	eval := func(x float64) (float64, error) { return x - 1, nil }

	rep, err := Compare("id", eval, identityRef{}, []float64{4, 8})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	for _, r := range rep.Rows {
		if r.Diff != 1 {
			t.Fatalf("Diff(%g) = %g, want 1", r.X, r.Diff)
		}
	}

	rep, err = Compare("id", eval, identityRef{}, []float64{4, 8}, WithRelative())
	if err != nil {
		t.Fatalf("Compare relative: %v", err)
	}
	if rep.Rows[0].Diff != 0.25 || rep.Rows[1].Diff != 0.125 {
		t.Fatalf("relative diffs = %g, %g, want 0.25, 0.125", rep.Rows[0].Diff, rep.Rows[1].Diff)
	}
	if rep.Stats.MaxAbs != 0.25 || rep.Stats.MaxAbsPos != 0 {
		t.Fatalf("MaxAbs = %g at %d, want 0.25 at 0", rep.Stats.MaxAbs, rep.Stats.MaxAbsPos)
	}
}

func TestCompareZeroWantRelative(t *testing.T) {
	eval := func(x float64) (float64, error) { return x + 0.5, nil }

	rep, err := Compare("id", eval, identityRef{}, []float64{0}, WithRelative())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if rep.Rows[0].Diff != -0.5 {
		t.Fatalf("Diff = %g, want -0.5", rep.Rows[0].Diff)
	}
}

func TestCompareReferenceError(t *testing.T) {
	eval := func(x float64) (float64, error) { return x, nil }

	rep, err := Compare("id", eval, identityRef{}, []float64{-1, 2})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if rep.Rows[0].RefErr == nil {
		t.Fatal("expected reference error for -1")
	}
	if rep.Failures != 0 {
		t.Fatalf("Failures = %d, want 0", rep.Failures)
	}
	if rep.Stats.Length != 1 {
		t.Fatalf("Stats.Length = %d, want 1", rep.Stats.Length)
	}
}

func TestCompareErrors(t *testing.T) {
	c := calc.Default()

	if _, err := Compare(calc.NameLn, c.Ln, Stdlib(), nil); err == nil {
		t.Fatal("expected error for empty inputs")
	}

	_, err := Compare(calc.NameTan, c.Tan, Decimal(0), DefaultInputs(calc.NameTan))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Compare(tan, decimal) error = %v, want ErrUnsupported", err)
	}
}

func TestRoundTrip(t *testing.T) {
	c := calc.Default()

	rep, err := RoundTrip("exp(ln(x))", c.Ln, c.Exp, DefaultInputs(calc.NameLn), WithRelative())
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if rep.Failures != 0 {
		t.Fatalf("Failures = %d, want 0", rep.Failures)
	}
	if rep.Reference != "identity" {
		t.Fatalf("Reference = %q, want identity", rep.Reference)
	}
	if rep.Stats.MaxAbs > 1e-9 {
		t.Fatalf("round trip error %g exceeds 1e-9", rep.Stats.MaxAbs)
	}

	rep, err = RoundTrip("exp(ln(x))", c.Ln, c.Exp, []float64{-1, 2})
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if rep.Failures != 1 || !errors.Is(rep.Rows[0].Err, core.ErrDomain) {
		t.Fatalf("Failures = %d, row error = %v, want 1 ErrDomain", rep.Failures, rep.Rows[0].Err)
	}
}

func TestRoundTripTanAtan(t *testing.T) {
	c := calc.Default()
	inputs := []float64{-1.5, -0.7, -0.1, 0, 0.1, 0.5, 1, 1.5}

	rep, err := RoundTrip("atan(tan(x))", c.Tan, c.Atan, inputs)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if rep.Failures != 0 {
		t.Fatalf("Failures = %d, want 0", rep.Failures)
	}
	if rep.Stats.MaxAbs > 1e-10 {
		t.Fatalf("round trip error %g exceeds 1e-10", rep.Stats.MaxAbs)
	}
}

func TestDefaultInputs(t *testing.T) {
	for _, f := range calc.Default().Functions() {
		if len(DefaultInputs(f.Name)) == 0 {
			t.Fatalf("no default inputs for %q", f.Name)
		}
	}
	if DefaultInputs("cosh") != nil {
		t.Fatal("expected nil inputs for unknown function")
	}
	if !DefaultRelative(calc.NameExp) || DefaultRelative(calc.NameLn) {
		t.Fatal("DefaultRelative mismatch")
	}
}
