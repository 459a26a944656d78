package pegium

// CstNode is a node in the Concrete Syntax Tree. Every matched byte has a
// home: Text spans exactly the bytes the producing element consumed (I1);
// Children appear in match order (I2); only terminal-rule/leaf nodes carry
// Hidden (I4). CstNode values are copied by value into parent slices so
// that rollback-on-FAIL is a simple slice-length truncation (I5).
type CstNode struct {
	// Text is the slice of the original input this node spans.
	Text []byte
	// Children holds this node's matched sub-nodes, in match order.
	Children []CstNode
	// GrammarSource is the element or rule that produced this node.
	GrammarSource Element
	// Action is the assignment whose element produced this node, if any
	// (set on the first child the Assignment's element appended, not on
	// any hidden leaves that follow it).
	Action *Assignment
	// IsLeaf is true for nodes produced directly by a terminal match
	// (literal, character class, terminal rule).
	IsLeaf bool
	// Hidden is true only for terminal-rule leaves matched as an
	// interleaved hidden token (comments and similar).
	Hidden bool
}

// RootCstNode is the CST root returned from a parse. It additionally
// retains the full input text the parse ran against.
type RootCstNode struct {
	CstNode
	FullText []byte
}

// snapshot returns the current child count of parent, to be passed to
// rollback on failure: a transactional append with O(1) truncation by
// recorded size.
func snapshot(parent *CstNode) int { return len(parent.Children) }

// rollback truncates parent's children back to a previously taken
// snapshot. Because Children is a plain slice, this is an O(1) re-slice;
// the backing array is reused by the next append.
func rollback(parent *CstNode, size int) {
	parent.Children = parent.Children[:size]
}

// LeafText returns the concatenation of the non-hidden leaf text under
// node, in match order. This is the default data-type-rule value
// converter.
func (n *CstNode) LeafText() []byte {
	if n.IsLeaf {
		if n.Hidden {
			return nil
		}
		return n.Text
	}
	var out []byte
	for i := range n.Children {
		out = append(out, n.Children[i].LeafText()...)
	}
	return out
}

// Walk visits node and every descendant, depth-first, pre-order, calling fn
// on each. Returning false from fn stops descent into that node's children
// without stopping the overall walk.
func (n *CstNode) Walk(fn func(*CstNode) bool) {
	if !fn(n) {
		return
	}
	for i := range n.Children {
		n.Children[i].Walk(fn)
	}
}
