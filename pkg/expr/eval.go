package expr

// Eval for Leaf returns its value.
func (l *Leaf) Eval() float64 {
	return l.Value
}

// Eval for Binary applies the operator to the evaluated children. Non-finite
// intermediate values propagate; they are never treated as errors.
func (b *Binary) Eval() float64 {
	return b.Op.Fn(b.Left.Eval(), b.Right.Eval())
}
