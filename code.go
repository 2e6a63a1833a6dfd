package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// CodeTable maps each Symbol of an alphabet to its codeword.  Codewords are
// non-empty strings over the characters '0' and '1'.  Tables produced by
// GenerateCodes are prefix-free by construction: codewords are root-to-leaf
// paths in a full binary tree, so no codeword is a prefix of another.
type CodeTable map[Symbol]string

// MinLength is the bit length of the shortest codeword in the table, or 0
// for an empty table.
func (t CodeTable) MinLength() int {
	min := 0
	for _, code := range t {
		if min == 0 || len(code) < min {
			min = len(code)
		}
	}
	return min
}

// MaxLength is the bit length of the longest codeword in the table, or 0
// for an empty table.
func (t CodeTable) MaxLength() int {
	max := 0
	for _, code := range t {
		if len(code) > max {
			max = len(code)
		}
	}
	return max
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer, sorted by codeword length and value.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	entries := make(byCodeword, 0, len(t))
	for symbol, code := range t {
		entries = append(entries, tableEntry{symbol, code})
	}
	entries.Sort()
	for _, entry := range entries {
		fmt.Fprintf(&buf, "\tCode(%q) = %q\n", entry.symbol, entry.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type tableEntry + type byCodeword {{{

type tableEntry struct {
	symbol Symbol
	code   string
}

type byCodeword []tableEntry

func (list byCodeword) Sort() {
	sort.Sort(list)
}

func (list byCodeword) Len() int {
	return len(list)
}

func (list byCodeword) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCodeword) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a.code) != len(b.code) {
		return len(a.code) < len(b.code)
	}
	if a.code != b.code {
		return a.code < b.code
	}
	return a.symbol < b.symbol
}

var _ sort.Interface = byCodeword(nil)

// }}}
