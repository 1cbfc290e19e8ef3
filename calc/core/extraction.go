package core

// Extraction is the digit accumulator of one engine call: how many times
// each table entry was applied before overshoot, plus the working value
// left after the last entry.
//
// It is a value type backed by a fixed array, so a call never allocates.
type Extraction struct {
	digits   [MaxTableSize + 1]int
	n        int
	residual float64
}

// NewExtraction returns an empty accumulator for n table indices.
// n is clamped to [0, MaxTableSize+1].
func NewExtraction(n int) Extraction {
	if n < 0 {
		n = 0
	}
	if n > MaxTableSize+1 {
		n = MaxTableSize + 1
	}
	return Extraction{n: n}
}

// Len returns the number of table indices.
func (e *Extraction) Len() int { return e.n }

// Digit returns the digit count at table index i.
func (e *Extraction) Digit(i int) int { return e.digits[i] }

// SetDigit stores the digit count for table index i.
func (e *Extraction) SetDigit(i, d int) { e.digits[i] = d }

// Residual returns the working value left after the last index.
func (e *Extraction) Residual() float64 { return e.residual }

// SetResidual stores the working value left after the last index.
func (e *Extraction) SetResidual(r float64) { e.residual = r }

// Digits returns a copy of the used digit counts.
func (e *Extraction) Digits() []int {
	out := make([]int, e.n)
	copy(out, e.digits[:e.n])
	return out
}
