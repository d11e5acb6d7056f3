package expr

import "fmt"

// Explain for Leaf has nothing to derive.
func (l *Leaf) Explain() (float64, []string) {
	return l.Value, []string{}
}

// Explain returns the value of b and the two-operand steps that reach it, in
// evaluation order: all of the left subtree's steps, then the right's, then
// the step combining the two reduced values.
func (b *Binary) Explain() (float64, []string) {
	lv, steps := b.Left.Explain()
	rv, rsteps := b.Right.Explain()
	steps = append(steps, rsteps...)

	v := b.Op.Fn(lv, rv)
	steps = append(steps, fmt.Sprintf("%s %s %s = %s",
		FormatValue(lv), b.Op.Name, FormatValue(rv), FormatValue(v)))
	return v, steps
}
