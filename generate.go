package huffcode

// GenerateCodes derives the codeword table for the tree rooted at root.  It
// walks the tree depth-first, appending '0' when descending to a left child
// and '1' when descending to a right child; the accumulated path at each
// leaf becomes that leaf symbol's codeword.
//
// A lone-leaf root is a degenerate tree whose only path is empty, and an
// empty codeword cannot be decoded.  GenerateCodes assigns the single
// symbol the canonical one-bit codeword "0" instead; Decode follows the
// same convention.
//
// GenerateCodes fails with EmptyTreeError if root is nil.
func GenerateCodes(root *Node) (CodeTable, error) {
	if root == nil {
		return nil, EmptyTreeError{}
	}

	table := make(CodeTable)
	if root.IsLeaf() {
		table[root.Symbol] = "0"
		return table, nil
	}

	// Depth-first walk with an explicit stack; the stack never grows
	// deeper than the tree, which is bounded by the alphabet size.

	type stackItem struct {
		node *Node
		path string
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{root, ""})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.IsLeaf() {
			table[top.node.Symbol] = top.path
			continue
		}
		if top.node.Right != nil {
			stack = append(stack, stackItem{top.node.Right, top.path + "1"})
		}
		if top.node.Left != nil {
			stack = append(stack, stackItem{top.node.Left, top.path + "0"})
		}
	}
	return table, nil
}
