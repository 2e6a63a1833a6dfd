// Package research compares Huffman codes across probability
// distributions: one codebook per distribution over a shared alphabet, the
// codeword table and quality metrics of each, and the encoded lengths of
// shared sample sequences under every code.  The report shows how a code
// tuned to one distribution pays for sequences drawn from another.
package research

import (
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/dataset"
)

// Distribution pairs a display name with a probability vector over the
// comparison alphabet.
type Distribution struct {
	Name  string
	Probs []float64
}

// Comparison describes one research run: an alphabet, the distributions to
// code it under, and the sample sequences to encode under every code.
type Comparison struct {
	Symbols       []huffcode.Symbol
	Distributions []Distribution
	Sequences     map[string][]huffcode.Symbol
}

// Result carries the artifacts of one distribution in a comparison.
type Result struct {
	Name     string
	Codebook *huffcode.Codebook
	Metrics  huffcode.Metrics
}

// Default returns the comparison shipped with the package: the built-in
// lab alphabet under the uniform, P1 and P2 distributions, with the
// built-in sample sequences.
func Default() *Comparison {
	return &Comparison{
		Symbols: dataset.Alphabet(),
		Distributions: []Distribution{
			{Name: "uniform", Probs: dataset.Uniform()},
			{Name: "p1", Probs: dataset.P1()},
			{Name: "p2", Probs: dataset.P2()},
		},
		Sequences: dataset.SampleSequences(),
	}
}

// Run executes the comparison and writes a plain-text report to w.  The
// returned Results hold the codebook and metrics of each distribution in
// input order, for callers that want more than the rendered report.
//
// Run fails if a distribution does not build over the alphabet or if a
// sample sequence contains a symbol outside it.
func (cmp *Comparison) Run(w io.Writer) ([]Result, error) {
	fmt.Fprintf(w, "=== Huffman code comparison: %d symbols, %d distributions ===\n", len(cmp.Symbols), len(cmp.Distributions))

	results := make([]Result, 0, len(cmp.Distributions))
	for _, dist := range cmp.Distributions {
		cb, err := huffcode.NewCodebook(cmp.Symbols, dist.Probs)
		if err != nil {
			return nil, fmt.Errorf("distribution %q: %w", dist.Name, err)
		}
		m := cb.Metrics()
		results = append(results, Result{Name: dist.Name, Codebook: cb, Metrics: m})

		fmt.Fprintf(w, "\n--- Distribution: %s ---\n", dist.Name)
		fmt.Fprintf(w, "%-8s  %11s  %-10s  %6s\n", "Symbol", "Probability", "Codeword", "Length")
		for index, symbol := range cmp.Symbols {
			code, _ := cb.Code(symbol)
			fmt.Fprintf(w, "%-8s  %11.4f  %-10s  %6d\n", symbol, dist.Probs[index], code, len(code))
		}
		fmt.Fprintf(w, "Average length: %.4f bits/symbol\n", m.AverageLength)
		fmt.Fprintf(w, "Entropy:        %.4f bits/symbol\n", m.Entropy)
		fmt.Fprintf(w, "Redundancy:     %.4f bits/symbol\n", m.Redundancy)
		kraftNote := "inequality holds"
		if !m.KraftOK {
			kraftNote = "inequality VIOLATED"
		}
		fmt.Fprintf(w, "Kraft sum:      %.4f (%s)\n", m.KraftSum, kraftNote)
	}

	if len(cmp.Sequences) != 0 && len(results) != 0 {
		names := make([]string, 0, len(cmp.Sequences))
		for name := range cmp.Sequences {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintf(w, "\n--- Encoded lengths of sample sequences ---\n")
		fmt.Fprintf(w, "%-18s  %7s", "Sequence", "Symbols")
		for _, r := range results {
			fmt.Fprintf(w, "  %10s", r.Name)
		}
		fmt.Fprintln(w)

		type verdict struct {
			name string
			best string
			bits int
		}
		verdicts := make([]verdict, 0, len(names))

		for _, name := range names {
			seq := cmp.Sequences[name]
			fmt.Fprintf(w, "%-18s  %7d", name, len(seq))

			bestName := ""
			bestBits := -1
			for _, r := range results {
				bits, err := r.Codebook.Encode(seq)
				if err != nil {
					return nil, fmt.Errorf("sequence %q under code %q: %w", name, r.Name, err)
				}
				fmt.Fprintf(w, "  %10d", len(bits))
				if bestBits < 0 || len(bits) < bestBits {
					bestName, bestBits = r.Name, len(bits)
				}
			}
			fmt.Fprintln(w)
			verdicts = append(verdicts, verdict{name: name, best: bestName, bits: bestBits})
		}

		fmt.Fprintf(w, "\n--- Best code per sequence ---\n")
		for _, v := range verdicts {
			fmt.Fprintf(w, "%s: %s (%d bits)\n", v.name, v.best, v.bits)
		}
	}

	return results, nil
}
