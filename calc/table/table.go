// Package table builds the constant tables that drive the digit-serial
// engines.
//
// Every table is an ordered list of (multiplier, value) pairs whose
// corrections shrink geometrically, one decimal digit per entry:
//
//   - [NewLog]:  2, 1.1, 1.01, ... paired with their natural logarithms
//   - [NewExp]:  ln 10 followed by the log family
//   - [NewTrig]: 1, 0.1, 0.01, ... paired with their arctangents
//
// Tables are built once and never mutated, so they can be shared by
// concurrent callers without locking.
package table

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-calc/calc/core"
)

var errNotDecreasing = errors.New("table values must be strictly decreasing")

// Table is an immutable sequence of (multiplier, value) pairs.
type Table struct {
	mult []float64
	val  []float64
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.mult) }

// Multiplier returns the multiplier of entry i.
func (t *Table) Multiplier(i int) float64 { return t.mult[i] }

// Value returns the logarithm or angle of entry i.
func (t *Table) Value(i int) float64 { return t.val[i] }

// Validate checks that every entry contributes a strictly smaller
// correction than the one before it.
func (t *Table) Validate() error {
	for i := 1; i < len(t.val); i++ {
		if !(t.val[i] < t.val[i-1]) {
			return fmt.Errorf("index %d: %g >= %g: %w", i, t.val[i], t.val[i-1], errNotDecreasing)
		}
	}
	return nil
}

func validateSize(size int) error {
	if size < 1 || size > core.MaxTableSize {
		return fmt.Errorf("table size must be in [1,%d]: %d", core.MaxTableSize, size)
	}
	return nil
}

// logMultiplier returns the i-th multiplier of the log family:
// 2 for i == 0, 1+10^-i otherwise.
func logMultiplier(i int) float64 {
	if i == 0 {
		return 2
	}
	return 1 + math.Pow10(-i)
}

// NewLog returns the pseudo-multiplication table used by ln.
func NewLog(size int) (*Table, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	t := &Table{
		mult: make([]float64, size),
		val:  make([]float64, size),
	}
	for i := range size {
		m := logMultiplier(i)
		t.mult[i] = m
		// Log of the stored multiplier, not of the decimal literal, so the
		// value matches what the engine actually multiplies by.
		t.val[i] = math.Log(m)
	}
	return t, nil
}

// NewExp returns the pseudo-division table used by exp. It has size+1
// entries: index 0 is (10, ln 10) and counts the power-of-ten exponent.
func NewExp(size int) (*Table, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	t := &Table{
		mult: make([]float64, size+1),
		val:  make([]float64, size+1),
	}
	t.mult[0] = 10
	t.val[0] = math.Ln10
	for i := range size {
		m := logMultiplier(i)
		t.mult[i+1] = m
		t.val[i+1] = math.Log(m)
	}
	return t, nil
}

// NewTrig returns the rotation table used by tan and atan.
func NewTrig(size int) (*Table, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	t := &Table{
		mult: make([]float64, size),
		val:  make([]float64, size),
	}
	for i := range size {
		m := math.Pow10(-i)
		t.mult[i] = m
		t.val[i] = math.Atan(m)
	}
	return t, nil
}
