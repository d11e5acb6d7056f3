package pool

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wildfunctions/solve24/pkg/expr"
)

// ErrUnknownPool is returned by Get for names that were never registered.
var ErrUnknownPool = errors.New("pool: unknown operator pool")

// Pool is a named, ordered set of operators a search may use.
type Pool interface {
	Name() string
	// Ops returns the operators in enumeration order. Callers get a copy.
	Ops() []expr.Op
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPool, name, Names())
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// fixedPool serves a subset of the canonical operators, kept in canonical order.
type fixedPool struct {
	name  string
	names []string
}

func (p *fixedPool) Name() string { return p.name }

func (p *fixedPool) Ops() []expr.Op {
	ops := make([]expr.Op, 0, len(p.names))
	for _, n := range p.names {
		if o, ok := expr.Lookup(n); ok {
			ops = append(ops, o)
		}
	}
	return ops
}
