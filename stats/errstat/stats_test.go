package errstat

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || !math.IsInf(s.Digits, 1) {
		t.Fatalf("empty stats = %+v", s)
	}
}

func TestCalculateKnownValues(t *testing.T) {
	s := Calculate([]float64{1e-12, -3e-12, 2e-12, 0})
	if s.Length != 4 {
		t.Fatalf("Length = %d", s.Length)
	}
	if !almostEqual(s.Mean, 0, tolerance) {
		t.Fatalf("Mean = %g, want 0", s.Mean)
	}
	if s.MaxAbs != 3e-12 || s.MaxAbsPos != 1 {
		t.Fatalf("MaxAbs = %g at %d, want 3e-12 at 1", s.MaxAbs, s.MaxAbsPos)
	}
	if s.Min != -3e-12 || s.Max != 2e-12 {
		t.Fatalf("range = [%g, %g]", s.Min, s.Max)
	}
	wantRMS := math.Sqrt((1 + 9 + 4) * 1e-24 / 4)
	if !almostEqual(s.RMS, wantRMS, 1e-24) {
		t.Fatalf("RMS = %g, want %g", s.RMS, wantRMS)
	}
	if !almostEqual(s.Variance, 14e-24/4, 1e-30) {
		t.Fatalf("Variance = %g", s.Variance)
	}
	if !almostEqual(s.Digits, -math.Log10(3e-12), 1e-12) {
		t.Fatalf("Digits = %g", s.Digits)
	}
}

func TestDigits(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{in: 1e-12, want: 12},
		{in: -1e-3, want: 3},
		{in: 1, want: 0},
		{in: 0, want: math.Inf(1)},
	} {
		if got := Digits(tc.in); !almostEqual(got, tc.want, 1e-12) {
			t.Fatalf("Digits(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestMaxAbs(t *testing.T) {
	if v, pos := MaxAbs(nil); v != 0 || pos != -1 {
		t.Fatalf("MaxAbs(nil) = %g, %d", v, pos)
	}
	if v, pos := MaxAbs([]float64{0.5, -2, 1}); v != 2 || pos != 1 {
		t.Fatalf("MaxAbs = %g, %d", v, pos)
	}
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) != 0")
	}
}

func TestAccumulatorMatchesCalculate(t *testing.T) {
	a := []float64{1e-13, -4e-13, 2.5e-13}
	b := []float64{7e-14, -1e-14}
	all := append(append([]float64(nil), a...), b...)

	var acc Accumulator
	acc.Update(a)
	acc.Update(b)
	got := acc.Result()
	want := Calculate(all)
	if got != want {
		t.Fatalf("streaming %+v != batch %+v", got, want)
	}

	acc.Reset()
	if r := acc.Result(); r.Length != 0 {
		t.Fatalf("after Reset Length = %d", r.Length)
	}
}
