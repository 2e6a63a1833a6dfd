package huffcode

// Symbol represents a symbol in an arbitrary alphabet.  Symbols are opaque
// comparable tokens: a Symbol is commonly a single character, but nothing in
// this package assumes length-1 tokens.
type Symbol string

// Symbols splits a string into a sequence of single-rune Symbols.  It is a
// convenience for callers whose alphabets consist of individual characters.
func Symbols(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// Join concatenates a symbol sequence back into a string.  It is the inverse
// of Symbols for single-rune alphabets.
func Join(seq []Symbol) string {
	n := 0
	for _, sym := range seq {
		n += len(sym)
	}
	out := make([]byte, 0, n)
	for _, sym := range seq {
		out = append(out, sym...)
	}
	return string(out)
}
