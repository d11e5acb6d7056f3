package expr

func (l *Leaf) Clone() Node {
	return &Leaf{Value: l.Value}
}

func (b *Binary) Clone() Node {
	return &Binary{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}
