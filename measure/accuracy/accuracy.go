package accuracy

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-calc/stats/errstat"
)

var errNoInputs = errors.New("accuracy: no inputs")

// Evaluator is a function under test.
type Evaluator func(x float64) (float64, error)

// Row is the outcome for one input.
type Row struct {
	X    float64
	Got  float64
	Want float64
	// Diff is Want - Got, divided by |Want| in relative mode.
	Diff float64
	// Err is the engine error; RefErr the reference error.
	Err    error
	RefErr error
}

// OK reports whether both the engine and the reference produced a value.
func (r Row) OK() bool { return r.Err == nil && r.RefErr == nil }

// Report collects the rows of one comparison and the statistics of the
// rows that succeeded.
type Report struct {
	Function  string
	Reference string
	Relative  bool
	Rows      []Row
	Stats     errstat.Stats
	// Failures counts rows where the engine returned an error.
	Failures int
}

// Option configures a comparison.
type Option func(*config)

type config struct {
	relative bool
}

// WithRelative reports errors relative to |Want| instead of absolute.
func WithRelative() Option {
	return func(c *config) {
		c.relative = true
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Compare evaluates eval and the reference's function fn at every input.
// Engine and per-input reference errors are recorded in the rows; an
// unsupported function aborts the comparison.
func Compare(fn string, eval Evaluator, ref Reference, inputs []float64, opts ...Option) (Report, error) {
	if len(inputs) == 0 {
		return Report{}, errNoInputs
	}

	rows := make([]Row, len(inputs))
	for i, x := range inputs {
		rows[i].X = x
		rows[i].Got, rows[i].Err = eval(x)
		want, err := ref.Eval(fn, x)
		if errors.Is(err, ErrUnsupported) {
			return Report{}, err
		}
		rows[i].Want, rows[i].RefErr = want, err
	}

	cfg := applyOptions(opts)
	return finish(fn, ref.Name(), rows, cfg), nil
}

// RoundTrip evaluates inverse(forward(x)) at every input and compares
// it with x.
func RoundTrip(name string, forward, inverse Evaluator, inputs []float64, opts ...Option) (Report, error) {
	if len(inputs) == 0 {
		return Report{}, errNoInputs
	}

	rows := make([]Row, len(inputs))
	for i, x := range inputs {
		rows[i].X = x
		rows[i].Want = x
		y, err := forward(x)
		if err != nil {
			rows[i].Err = fmt.Errorf("forward: %w", err)
			continue
		}
		rows[i].Got, err = inverse(y)
		if err != nil {
			rows[i].Err = fmt.Errorf("inverse: %w", err)
		}
	}

	cfg := applyOptions(opts)
	return finish(name, "identity", rows, cfg), nil
}

// finish fills Diff for the successful rows and computes statistics.
func finish(fn, ref string, rows []Row, cfg config) Report {
	rep := Report{
		Function:  fn,
		Reference: ref,
		Relative:  cfg.relative,
		Rows:      rows,
	}

	idx := make([]int, 0, len(rows))
	for i, r := range rows {
		if r.Err != nil {
			rep.Failures++
		}
		if r.OK() {
			idx = append(idx, i)
		}
	}

	got := make([]float64, len(idx))
	want := make([]float64, len(idx))
	for k, i := range idx {
		got[k] = rows[i].Got
		want[k] = rows[i].Want
	}

	diff := make([]float64, len(idx))
	vecmath.ScaleBlock(diff, got, -1)
	vecmath.AddBlockInPlace(diff, want)

	if cfg.relative {
		scale := make([]float64, len(want))
		for k, w := range want {
			scale[k] = 1
			if w != 0 {
				scale[k] = 1 / math.Abs(w)
			}
		}
		vecmath.MulBlockInPlace(diff, scale)
	}

	for k, i := range idx {
		rows[i].Diff = diff[k]
	}
	rep.Stats = errstat.Calculate(diff)
	return rep
}
