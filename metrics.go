package huffcode

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when comparing derived floating-point
// quantities, e.g. the Kraft sum against 1.0.  Summing several 2^-k terms
// can drift past an exact bound by rounding error even when the true value
// meets it.
const Epsilon = 1e-9

// AverageLength computes the expected codeword length of the code in table
// under the given distribution: the sum of weights[i] times the length of
// the codeword of symbols[i].
//
// AverageLength fails with InvalidInputError if the argument lengths
// differ, and with UnknownSymbolError if a symbol has no codeword in table.
func AverageLength(table CodeTable, symbols []Symbol, weights []float64) (float64, error) {
	if len(symbols) != len(weights) {
		return 0, InvalidInputError{Reason: fmt.Sprintf("symbol count %d does not match weight count %d", len(symbols), len(weights))}
	}
	var sum float64
	for index, symbol := range symbols {
		code, found := table[symbol]
		if !found {
			return 0, UnknownSymbolError{Symbol: symbol, Position: index}
		}
		sum += weights[index] * float64(len(code))
	}
	return sum, nil
}

// Entropy computes the Shannon entropy of the given distribution in bits:
// the negated sum of p*log2(p) over all strictly positive probabilities.
// Zero probabilities contribute 0, never NaN.
//
// Entropy fails with InvalidInputError if a probability is negative.
func Entropy(weights []float64) (float64, error) {
	var sum float64
	for index, p := range weights {
		if p < 0 || math.IsNaN(p) {
			return 0, InvalidInputError{Reason: fmt.Sprintf("probability %v at position %d is not a non-negative number", p, index)}
		}
		if p == 0 {
			continue
		}
		sum -= p * math.Log2(p)
	}
	return sum, nil
}

// Redundancy is the gap between a code's average length and the entropy
// bound.  For a Huffman code over a true probability distribution it is
// non-negative up to floating-point error.
func Redundancy(averageLength, entropy float64) float64 {
	return averageLength - entropy
}

// Kraft computes the Kraft sum of the code in table, the sum of
// 2^-length(codeword) over all codewords, and reports whether the sum
// satisfies the Kraft inequality (at most 1, with Epsilon tolerance).
func Kraft(table CodeTable) (sum float64, satisfied bool) {
	for _, code := range table {
		sum += pow2neg(len(code))
	}
	return sum, sum <= 1+Epsilon
}

// Metrics bundles the four quality measures of one code under one
// distribution.
type Metrics struct {
	AverageLength float64
	Entropy       float64
	Redundancy    float64
	KraftSum      float64
	KraftOK       bool
}

// Measure computes all Metrics of the code in table under the given
// distribution.  It fails the way AverageLength and Entropy fail.
func Measure(table CodeTable, symbols []Symbol, weights []float64) (Metrics, error) {
	avg, err := AverageLength(table, symbols, weights)
	if err != nil {
		return Metrics{}, err
	}
	ent, err := Entropy(weights)
	if err != nil {
		return Metrics{}, err
	}
	sum, ok := Kraft(table)
	return Metrics{
		AverageLength: avg,
		Entropy:       ent,
		Redundancy:    Redundancy(avg, ent),
		KraftSum:      sum,
		KraftOK:       ok,
	}, nil
}

// CompressionRatio compares a sequence of symbolCount symbols at 8 bits per
// symbol against its encoding as bitCount literal '0'/'1' characters.  The
// ratio is 0 when bitCount is 0.
func CompressionRatio(symbolCount int, bitCount int) float64 {
	if bitCount == 0 {
		return 0
	}
	return float64(symbolCount*8) / float64(bitCount)
}
