// Package dataset carries the built-in lab data: an eight-symbol alphabet,
// three probability distributions over it, and deterministic sample
// sequences typical of each distribution.  The research report and the
// interactive tools use this data as their default input.
package dataset

import (
	"fmt"
	"math"

	"github.com/chronos-tachyon/huffcode"
)

// SumTolerance is how far the sum of a probability set may drift from 1
// before the set is considered invalid.
const SumTolerance = 1e-6

var alphabet = []huffcode.Symbol{"A", "B", "C", "D", "E", "F", "G", "H"}

var p1 = []float64{0.30, 0.20, 0.15, 0.10, 0.10, 0.05, 0.05, 0.05}

var p2 = []float64{0.50, 0.20, 0.10, 0.08, 0.05, 0.04, 0.02, 0.01}

// sampleCounts says how often each alphabet symbol occurs in the sample
// sequence of each distribution.  Every sequence holds 32 symbols.
var sampleCounts = map[string][]int{
	"uniform-typical": {4, 4, 4, 4, 4, 4, 4, 4},
	"p1-typical":      {10, 6, 5, 3, 3, 2, 2, 1},
	"p2-typical":      {16, 6, 3, 3, 2, 1, 1, 0},
}

// Alphabet returns the lab alphabet in its canonical order.
func Alphabet() []huffcode.Symbol {
	out := make([]huffcode.Symbol, len(alphabet))
	copy(out, alphabet)
	return out
}

// Uniform returns the uniform distribution over the alphabet.
func Uniform() []float64 {
	out := make([]float64, len(alphabet))
	for i := range out {
		out[i] = 1 / float64(len(alphabet))
	}
	return out
}

// P1 returns the moderately skewed lab distribution.
func P1() []float64 {
	out := make([]float64, len(p1))
	copy(out, p1)
	return out
}

// P2 returns the strongly skewed lab distribution.
func P2() []float64 {
	out := make([]float64, len(p2))
	copy(out, p2)
	return out
}

// SampleSequences returns the named sample sequences.  Each sequence is
// deterministic: the symbols of the alphabet repeated in proportion to one
// of the distributions.
func SampleSequences() map[string][]huffcode.Symbol {
	out := make(map[string][]huffcode.Symbol, len(sampleCounts))
	for name, counts := range sampleCounts {
		var seq []huffcode.Symbol
		for index, count := range counts {
			for i := 0; i < count; i++ {
				seq = append(seq, alphabet[index])
			}
		}
		out[name] = seq
	}
	return out
}

// Validate checks the built-in data for consistency: the distributions
// must parallel the alphabet, contain no negative entries, and sum to 1
// within SumTolerance, and every sample sequence must cover the alphabet.
func Validate() error {
	for name, probs := range map[string][]float64{"uniform": Uniform(), "p1": p1, "p2": p2} {
		if len(probs) != len(alphabet) {
			return fmt.Errorf("distribution %q has %d entries for %d symbols", name, len(probs), len(alphabet))
		}
		var sum float64
		for index, p := range probs {
			if p < 0 {
				return fmt.Errorf("distribution %q has negative probability %v at position %d", name, p, index)
			}
			sum += p
		}
		if math.Abs(sum-1) > SumTolerance {
			return fmt.Errorf("distribution %q sums to %v, want 1", name, sum)
		}
	}
	for name, counts := range sampleCounts {
		if len(counts) != len(alphabet) {
			return fmt.Errorf("sample sequence %q has %d counts for %d symbols", name, len(counts), len(alphabet))
		}
		for index, count := range counts {
			if count < 0 {
				return fmt.Errorf("sample sequence %q has negative count %d at position %d", name, count, index)
			}
		}
	}
	return nil
}
