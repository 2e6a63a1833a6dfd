package huffcode

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Build constructs a Huffman code tree for the given alphabet.  The two
// arguments are parallel: weights[i] is the weight of symbols[i].  Weights
// are interpreted as probabilities but are not required to sum to 1; zero
// weights are permitted, negative weights are not.
//
// Build fails with InvalidInputError if the lengths differ, if the alphabet
// is empty, if a symbol appears twice, or if a weight is negative.
//
// Ties between nodes of equal weight are broken deterministically: the node
// inserted earlier is extracted first, leaves in alphabet order before
// merged nodes in creation order.  Identical inputs therefore always
// produce identical trees.  The first of the two nodes extracted by a merge
// step becomes the left child of the merged node.
func Build(symbols []Symbol, weights []float64) (*Node, error) {
	if len(symbols) != len(weights) {
		return nil, InvalidInputError{Reason: fmt.Sprintf("symbol count %d does not match weight count %d", len(symbols), len(weights))}
	}
	if len(symbols) == 0 {
		return nil, InvalidInputError{Reason: "alphabet is empty"}
	}
	seen := make(map[Symbol]int, len(symbols))
	for index, symbol := range symbols {
		if firstIndex, found := seen[symbol]; found {
			return nil, InvalidInputError{Reason: fmt.Sprintf("duplicate symbol %q at positions %d and %d", symbol, firstIndex, index)}
		}
		seen[symbol] = index
		if w := weights[index]; w < 0 || math.IsNaN(w) {
			return nil, InvalidInputError{Reason: fmt.Sprintf("weight %v of symbol %q is not a non-negative number", w, symbol)}
		}
	}

	// Step 1: build a minheap holding one leaf per (symbol, weight) pair.
	//
	// Each node carries the sequence number of its insertion.  The
	// sequence number is the tie-break between equal weights, so heap
	// order is a total order and tree shape does not depend on heap
	// internals.

	h := nodeHeap{list: make([]weightedNode, 0, len(symbols))}
	for index, symbol := range symbols {
		leaf := &Node{Symbol: symbol, Weight: weights[index]}
		h.list = append(h.list, weightedNode{node: leaf, seq: index})
	}
	h.Init()

	// Step 2: repeatedly pop the two lightest nodes and push their merge
	// until exactly one node remains.  Merged nodes continue the sequence
	// numbering where the leaves left off.

	nextSeq := len(symbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)
		merged := &Node{
			Weight: a.node.Weight + b.node.Weight,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, weightedNode{node: merged, seq: nextSeq})
		nextSeq++
	}

	assert.Assertf(h.Len() == 1, "heap holds %d nodes, want exactly 1", h.Len())
	return heap.Pop(&h).(weightedNode).node, nil
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node *Node
	seq  int
}

type nodeHeap struct {
	list []weightedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
