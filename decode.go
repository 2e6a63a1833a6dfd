package huffcode

// Decode maps a bit string back to the symbol sequence it encodes by
// walking the tree rooted at root: starting from the root, each '0' moves
// to the left child and each '1' to the right child, and reaching a leaf
// emits that leaf's symbol and resets the walk to the root.  An empty bit
// string decodes to an empty sequence.
//
// Decode fails with EmptyTreeError if root is nil, with InvalidBitError if
// the bit string contains a character other than '0' or '1', with
// MalformedTreeError if the walk reaches a node that lacks the requested
// child, and with IncompleteCodeError if the bit string ends in the middle
// of a codeword.
//
// A lone-leaf root follows the convention fixed by GenerateCodes: every '0'
// emits the single symbol, while '1' names a child a leaf cannot have and
// fails with MalformedTreeError.
func Decode(bits string, root *Node) ([]Symbol, error) {
	if root == nil {
		return nil, EmptyTreeError{}
	}

	out := make([]Symbol, 0, len(bits))

	if root.IsLeaf() {
		for index := 0; index < len(bits); index++ {
			switch bits[index] {
			case '0':
				out = append(out, root.Symbol)
			case '1':
				return nil, MalformedTreeError{Position: index}
			default:
				return nil, InvalidBitError{Bit: bits[index], Position: index}
			}
		}
		return out, nil
	}

	cur := root
	start := 0
	for index := 0; index < len(bits); index++ {
		var next *Node
		switch bits[index] {
		case '0':
			next = cur.Left
		case '1':
			next = cur.Right
		default:
			return nil, InvalidBitError{Bit: bits[index], Position: index}
		}
		if next == nil {
			return nil, MalformedTreeError{Position: index}
		}
		if next.IsLeaf() {
			out = append(out, next.Symbol)
			cur = root
			start = index + 1
		} else {
			cur = next
		}
	}
	if cur != root {
		return nil, IncompleteCodeError{Position: start}
	}
	return out, nil
}
