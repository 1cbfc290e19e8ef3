package logexp

// Normalize divides x by 10 until it is below 10 and returns the
// remaining mantissa with the number of divisions. Values already below
// 10 are returned unchanged; the ln table absorbs small mantissas through
// its factor-of-two entry.
func Normalize(x float64) (mantissa float64, k int) {
	for x >= 10 {
		x /= 10
		k++
	}
	return x, k
}

// PseudoMultiply multiplies a by m while the product stays below 10.
// It returns the final a and the number of multiplications applied.
func PseudoMultiply(a, m float64) (float64, int) {
	digits := 0
	for {
		p := a * m
		if p >= 10 {
			return a, digits
		}
		a = p
		digits++
	}
}

// PseudoDivide subtracts v from a while the difference stays
// non-negative. It returns the final a and the number of subtractions
// applied.
func PseudoDivide(a, v float64) (float64, int) {
	digits := 0
	for {
		s := a - v
		if s < 0 {
			return a, digits
		}
		a = s
		digits++
	}
}
