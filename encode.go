package huffcode

import (
	"strings"
)

// Encode renders a symbol sequence as a bit string by concatenating each
// symbol's codeword in order.  The output length is the sum of the
// per-symbol codeword lengths; an empty input yields an empty bit string.
//
// Encode fails with UnknownSymbolError, identifying the offending symbol
// and its position, if a symbol has no entry in table.
func Encode(seq []Symbol, table CodeTable) (string, error) {
	var buf strings.Builder
	for index, symbol := range seq {
		code, found := table[symbol]
		if !found {
			return "", UnknownSymbolError{Symbol: symbol, Position: index}
		}
		buf.WriteString(code)
	}
	return buf.String(), nil
}
