package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Codebook owns one Huffman tree together with the code table derived from
// it.  The two only make sense as a pair: a table decodes correctly against
// the tree it was generated from and no other.  Building both through one
// Codebook makes a mismatched pairing impossible.
//
// A Codebook is immutable once built and is safe for concurrent use.
type Codebook struct {
	symbols []Symbol
	weights []float64
	root    *Node
	table   CodeTable
}

// NewCodebook builds the Huffman tree for the given alphabet and derives
// its code table in one step.  It fails the way Build and GenerateCodes
// fail.
func NewCodebook(symbols []Symbol, weights []float64) (*Codebook, error) {
	root, err := Build(symbols, weights)
	if err != nil {
		return nil, err
	}
	table, err := GenerateCodes(root)
	if err != nil {
		return nil, err
	}

	cb := &Codebook{
		symbols: make([]Symbol, len(symbols)),
		weights: make([]float64, len(weights)),
		root:    root,
		table:   table,
	}
	copy(cb.symbols, symbols)
	copy(cb.weights, weights)
	return cb, nil
}

// Len is the number of symbols in the alphabet.
func (cb *Codebook) Len() int {
	return len(cb.symbols)
}

// Symbols returns a copy of the alphabet in its original order.
func (cb *Codebook) Symbols() []Symbol {
	out := make([]Symbol, len(cb.symbols))
	copy(out, cb.symbols)
	return out
}

// Weights returns a copy of the weights in alphabet order.
func (cb *Codebook) Weights() []float64 {
	out := make([]float64, len(cb.weights))
	copy(out, cb.weights)
	return out
}

// Root returns the root of the code tree.  The tree is shared, not copied;
// treat it as read-only.
func (cb *Codebook) Root() *Node {
	return cb.root
}

// Table returns a copy of the code table.
func (cb *Codebook) Table() CodeTable {
	out := make(CodeTable, len(cb.table))
	for symbol, code := range cb.table {
		out[symbol] = code
	}
	return out
}

// Code returns the codeword of the given symbol, if it has one.
func (cb *Codebook) Code(symbol Symbol) (string, bool) {
	code, found := cb.table[symbol]
	return code, found
}

// MinLength is the bit length of the shortest codeword.
func (cb *Codebook) MinLength() int {
	return cb.table.MinLength()
}

// MaxLength is the bit length of the longest codeword.
func (cb *Codebook) MaxLength() int {
	return cb.table.MaxLength()
}

// Encode renders a symbol sequence as a bit string using this Codebook's
// table.  See Encode.
func (cb *Codebook) Encode(seq []Symbol) (string, error) {
	return Encode(seq, cb.table)
}

// Decode maps a bit string back to a symbol sequence using this Codebook's
// tree.  See Decode.
func (cb *Codebook) Decode(bits string) ([]Symbol, error) {
	return Decode(bits, cb.root)
}

// Metrics computes the quality measures of this code under the weights the
// Codebook was built from.
func (cb *Codebook) Metrics() Metrics {
	m, err := Measure(cb.table, cb.symbols, cb.weights)
	assert.Assertf(err == nil, "metrics of a built codebook failed: %v", err)
	return m
}

// String returns a short human-readable description of this Codebook.
func (cb *Codebook) String() string {
	return fmt.Sprintf("(Huffman codebook with %d symbols, with code lengths of %d .. %d bits)", cb.Len(), cb.MinLength(), cb.MaxLength())
}

// GoString returns a Go expression that would construct this Codebook.
func (cb *Codebook) GoString() string {
	var buf strings.Builder
	buf.WriteString("NewCodebook([]Symbol{")
	for index, symbol := range cb.symbols {
		if index != 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q", symbol)
	}
	buf.WriteString("}, []float64{")
	for index, weight := range cb.weights {
		if index != 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%g", weight)
	}
	buf.WriteString("})")
	return buf.String()
}

// DebugString returns the Dump output as a string.
func (cb *Codebook) DebugString() string {
	var buf strings.Builder
	_, _ = cb.Dump(&buf)
	return buf.String()
}

// Dump writes a programmer-readable debugging dump of this Codebook to the
// given writer, one codeword per line in alphabet order.
func (cb *Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tMinLength() = %d\n", cb.MinLength())
	fmt.Fprintf(&buf, "\tMaxLength() = %d\n", cb.MaxLength())
	for _, symbol := range cb.symbols {
		fmt.Fprintf(&buf, "\tCode(%q) = %q\n", symbol, cb.table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var (
	_ fmt.Stringer   = (*Codebook)(nil)
	_ fmt.GoStringer = (*Codebook)(nil)
)
