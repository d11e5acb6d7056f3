package engine

import "github.com/wildfunctions/solve24/pkg/expr"

// Solution is the serializable view of one solution expression.
type Solution struct {
	Index   int      `json:"index" yaml:"index"`
	Infix   string   `json:"infix" yaml:"infix"`
	Prefix  string   `json:"prefix" yaml:"prefix"`
	Postfix string   `json:"postfix" yaml:"postfix"`
	Value   float64  `json:"value" yaml:"value"`
	Steps   []string `json:"steps" yaml:"steps"`
}

// NewSolution renders n in every notation and explains it.
func NewSolution(index int, n expr.Node) Solution {
	v, steps := n.Explain()
	return Solution{
		Index:   index,
		Infix:   n.String(),
		Prefix:  n.Prefix(),
		Postfix: n.Postfix(),
		Value:   v,
		Steps:   steps,
	}
}

// Render returns the solution in the given notation.
func (s Solution) Render(notation expr.Notation) string {
	switch notation {
	case expr.Prefix:
		return s.Prefix
	case expr.Postfix:
		return s.Postfix
	default:
		return s.Infix
	}
}

// Report summarizes a search over one card.
type Report struct {
	Numbers   []float64  `json:"numbers" yaml:"numbers"`
	Target    float64    `json:"target" yaml:"target"`
	Pool      string     `json:"pool" yaml:"pool"`
	Count     int        `json:"count" yaml:"count"`
	Truncated bool       `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Solutions []Solution `json:"solutions" yaml:"solutions"`
}
