package card

import "github.com/wildfunctions/solve24/pkg/expr"

// Option customizes a Card before it is used.
type Option func(*Card)

// WithTarget overrides DefaultTarget.
func WithTarget(target float64) Option {
	return func(c *Card) {
		c.target = target
	}
}

// WithOps replaces the operator set. The order of ops is the enumeration
// order. Panics on nil; an empty set is allowed and yields no assignments
// for cards with two or more operands.
func WithOps(ops []expr.Op) Option {
	if ops == nil {
		panic("card: WithOps(nil)")
	}
	cp := append([]expr.Op{}, ops...)
	return func(c *Card) {
		c.ops = cp
	}
}
