package card

import (
	"iter"

	"github.com/wildfunctions/solve24/pkg/expr"
)

// partial is one state of the reduction: the current sequence of nodes and
// the lowest position the next merge may use.
type partial struct {
	nodes []expr.Node
	lo    int
}

// Shapes yields one expression per full binary parenthesization of values,
// Catalan(len(values)-1) in total, in breadth-first order.
//
// Starting from the leaves, each step merges two adjacent nodes of a partial
// sequence into a Binary node. The operator for a merge is
// ops[len(sequence)-2], so the tail of ops is consumed first and the root
// always gets ops[0]. After merging at position i, successors only merge at
// i-1 or later; that restricts every tree to its leftmost-ready merge order
// and keeps any shape from being produced twice.
//
// len(ops) must be len(values)-1, otherwise nothing is yielded. No values
// yields nothing; a single value yields its leaf.
func Shapes(values []float64, ops []expr.Op) iter.Seq[expr.Node] {
	return func(yield func(expr.Node) bool) {
		if len(values) == 0 || len(ops) != len(values)-1 {
			return
		}
		seed := make([]expr.Node, len(values))
		for i, v := range values {
			seed[i] = expr.NewLeaf(v)
		}

		queue := []partial{{nodes: seed}}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]

			if len(p.nodes) == 1 {
				if !yield(p.nodes[0]) {
					return
				}
				continue
			}

			op := ops[len(p.nodes)-2]
			for i := p.lo; i < len(p.nodes)-1; i++ {
				next := make([]expr.Node, 0, len(p.nodes)-1)
				next = append(next, p.nodes[:i]...)
				next = append(next, expr.NewBinary(op, p.nodes[i], p.nodes[i+1]))
				next = append(next, p.nodes[i+2:]...)
				queue = append(queue, partial{nodes: next, lo: max(0, i-1)})
			}
		}
	}
}

// ShapeCount returns Catalan(n-1), the number of expressions Shapes yields
// for n values. It returns 0 for n < 1.
func ShapeCount(n int) int {
	if n < 1 {
		return 0
	}
	c := 1
	for k := 0; k < n-1; k++ {
		c = c * 2 * (2*k + 1) / (k + 2)
	}
	return c
}
