package expr

func (l *Leaf) NodeCount() int { return 1 }
func (b *Binary) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

func (l *Leaf) Depth() int { return 1 }
func (b *Binary) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

func (l *Leaf) Leaves() []float64 { return []float64{l.Value} }
func (b *Binary) Leaves() []float64 {
	return append(b.Left.Leaves(), b.Right.Leaves()...)
}

// InternalCount returns the number of Binary nodes in n.
func InternalCount(n Node) int {
	switch n := n.(type) {
	case *Binary:
		return 1 + InternalCount(n.Left) + InternalCount(n.Right)
	default:
		return 0
	}
}
