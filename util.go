package huffcode

import (
	"math"
)

// pow2neg returns 2^-n exactly, with no summation error for any codeword
// length that fits in a float64 exponent.
func pow2neg(n int) float64 {
	return math.Ldexp(1, -n)
}
