package huffcode

import (
	"bytes"
	"fmt"
	"io"
)

// Node is one node of a Huffman code tree.  A Node is either a leaf, which
// holds one Symbol and its weight, or an internal node, which holds two
// children and the sum of their weights.
//
// Trees built by Build are full binary trees: every internal node owns
// exactly two children, and no node is shared between two parents.  A tree
// whose alphabet contains a single symbol degenerates to a lone leaf root.
//
// A Node is immutable once built and is safe for concurrent readers.
type Node struct {
	// Symbol is the leaf's symbol.  It is meaningful only when IsLeaf
	// reports true.
	Symbol Symbol

	// Weight is the leaf's weight, or the sum of the children's weights
	// for an internal node.
	Weight float64

	// Left and Right are the children.  Both are nil for a leaf.
	Left  *Node
	Right *Node
}

// IsLeaf reports whether this Node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the number of leaves in the subtree rooted at this Node.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Dump writes a programmer-readable debugging dump of the tree rooted at
// this Node to the given writer.  Each line names a node by its path from
// the root, '0' for a left branch and '1' for a right branch.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")

	// Preorder walk with an explicit stack.  Right is pushed before left
	// so that left branches are emitted first.
	type stackItem struct {
		node *Node
		path string
	}

	stack := make([]stackItem, 0, 16)
	if n != nil {
		stack = append(stack, stackItem{n, ""})
	}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%q) = Leaf{%q, %g}\n", top.path, top.node.Symbol, top.node.Weight)
			continue
		}
		fmt.Fprintf(&buf, "\tNode(%q) = %g\n", top.path, top.node.Weight)
		if top.node.Right != nil {
			stack = append(stack, stackItem{top.node.Right, top.path + "1"})
		}
		if top.node.Left != nil {
			stack = append(stack, stackItem{top.node.Left, top.path + "0"})
		}
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
