package huffcode

import (
	"fmt"
)

// InvalidInputError reports a (symbols, weights) request that violates the
// builder's preconditions: mismatched lengths, an empty alphabet, a
// duplicated symbol, or a negative weight.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// EmptyTreeError reports an operation that requires a code tree when no tree
// is present.
type EmptyTreeError struct{}

func (e EmptyTreeError) Error() string {
	return "empty tree: no code tree is present"
}

// UnknownSymbolError reports a symbol with no entry in the code table.
// Position is the symbol's index in the input sequence.
type UnknownSymbolError struct {
	Symbol   Symbol
	Position int
}

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q at position %d: no codeword in table", e.Symbol, e.Position)
}

// InvalidBitError reports a character in a bit string that is neither '0'
// nor '1'.  Position is the character's index in the bit string.
type InvalidBitError struct {
	Bit      byte
	Position int
}

func (e InvalidBitError) Error() string {
	return fmt.Sprintf("invalid bit %q at position %d: want '0' or '1'", e.Bit, e.Position)
}

// MalformedTreeError reports a decode walk that fell off the tree structure:
// the requested child does not exist.  Position is the index of the bit that
// could not be followed.
type MalformedTreeError struct {
	Position int
}

func (e MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed tree: walk fell off the tree at bit position %d", e.Position)
}

// IncompleteCodeError reports a bit string that ended in the middle of a
// codeword.  Position is the index at which the unterminated codeword
// starts.
type IncompleteCodeError struct {
	Position int
}

func (e IncompleteCodeError) Error() string {
	return fmt.Sprintf("incomplete code: bit string ends mid-codeword starting at position %d", e.Position)
}

var (
	_ error = InvalidInputError{}
	_ error = EmptyTreeError{}
	_ error = UnknownSymbolError{}
	_ error = InvalidBitError{}
	_ error = MalformedTreeError{}
	_ error = IncompleteCodeError{}
)
