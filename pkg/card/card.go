package card

import (
	"fmt"
	"iter"
	"strings"

	"github.com/wildfunctions/solve24/pkg/combin"
	"github.com/wildfunctions/solve24/pkg/expr"
)

// DefaultTarget is the value a Card aims for unless WithTarget overrides it.
const DefaultTarget = 24.0

// Card is one puzzle instance: ordered operands, a target and the operators
// the search may use. It is immutable once built.
type Card struct {
	numbers []float64
	ops     []expr.Op
	target  float64
}

// New builds a Card from numbers. The slice is copied.
func New(numbers []float64, opts ...Option) *Card {
	c := &Card{
		numbers: append([]float64(nil), numbers...),
		ops:     expr.Standard(),
		target:  DefaultTarget,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Numbers returns a copy of the operands.
func (c *Card) Numbers() []float64 {
	return append([]float64(nil), c.numbers...)
}

// Ops returns a copy of the operator set.
func (c *Card) Ops() []expr.Op {
	return append([]expr.Op(nil), c.ops...)
}

// Target returns the value solutions must reach.
func (c *Card) Target() float64 {
	return c.target
}

// String renders the card as "[1 3 4 6] -> 24".
func (c *Card) String() string {
	vals := make([]string, len(c.numbers))
	for i, v := range c.numbers {
		vals[i] = expr.FormatValue(v)
	}
	return fmt.Sprintf("[%s] -> %s", strings.Join(vals, " "), expr.FormatValue(c.target))
}

// Matches reports whether n evaluates to the target within expr.Epsilon.
func (c *Card) Matches(n expr.Node) bool {
	return expr.ApproxEqual(n.Eval(), c.target)
}

// Assignments yields every assignment of operators to the len(numbers)-1
// combination slots, in odometer order over the operator set. A card with a
// single operand yields one empty assignment; an empty card yields nothing.
func (c *Card) Assignments() iter.Seq[[]expr.Op] {
	return func(yield func([]expr.Op) bool) {
		if len(c.numbers) == 0 {
			return
		}
		sizes := combin.Repeat(len(c.ops), len(c.numbers)-1)
		for idxs := range combin.CartesianProduct(sizes) {
			ops := make([]expr.Op, len(idxs))
			for k, i := range idxs {
				ops[k] = c.ops[i]
			}
			if !yield(ops) {
				return
			}
		}
	}
}

// AssignmentCount returns how many assignments Assignments yields.
func (c *Card) AssignmentCount() int {
	if len(c.numbers) == 0 {
		return 0
	}
	return combin.Count(combin.Repeat(len(c.ops), len(c.numbers)-1))
}

// Candidates yields every expression the search builds, matching or not.
func (c *Card) Candidates() iter.Seq[expr.Node] {
	return func(yield func(expr.Node) bool) {
		for ops := range c.Assignments() {
			for n := range c.candidatesFor(ops) {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// Solve yields every candidate whose value matches the target.
func (c *Card) Solve() iter.Seq[expr.Node] {
	return func(yield func(expr.Node) bool) {
		for ops := range c.Assignments() {
			for n := range c.SolveAssignment(ops) {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// SolveAssignment yields the solutions that use one operator assignment.
// Concatenating it over Assignments gives exactly Solve.
func (c *Card) SolveAssignment(ops []expr.Op) iter.Seq[expr.Node] {
	return func(yield func(expr.Node) bool) {
		for n := range c.candidatesFor(ops) {
			if c.Matches(n) && !yield(n) {
				return
			}
		}
	}
}

func (c *Card) candidatesFor(ops []expr.Op) iter.Seq[expr.Node] {
	return func(yield func(expr.Node) bool) {
		for perm := range combin.PermuteValues(c.numbers) {
			for n := range Shapes(perm, ops) {
				if !yield(n) {
					return
				}
			}
		}
	}
}
