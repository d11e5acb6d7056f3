package expr

// Node is the interface for all expression tree nodes.
//
// Nodes are values: once built they are never mutated, and a Binary node
// owns its children exclusively (combining two nodes clones them).
type Node interface {
	Eval() float64
	String() string
	Prefix() string
	Postfix() string
	Explain() (float64, []string)
	Clone() Node
	NodeCount() int
	Depth() int
	Leaves() []float64
}

// Leaf wraps a single operand value.
type Leaf struct {
	Value float64
}

// Binary applies an operator to two child expressions.
type Binary struct {
	Op          Op
	Left, Right Node
}

// NewLeaf returns a leaf for v.
func NewLeaf(v float64) *Leaf {
	return &Leaf{Value: v}
}

// NewBinary combines left and right under op. The children are cloned so
// the new node never shares structure with its inputs.
func NewBinary(op Op, left, right Node) *Binary {
	return &Binary{
		Op:    op,
		Left:  left.Clone(),
		Right: right.Clone(),
	}
}
