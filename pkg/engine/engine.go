package engine

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wildfunctions/solve24/pkg/card"
	"github.com/wildfunctions/solve24/pkg/expr"
	"github.com/wildfunctions/solve24/pkg/pool"
)

// Engine runs searches with a fixed configuration.
type Engine struct {
	cfg      Config
	pool     pool.Pool
	notation expr.Notation
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates a new engine from the given config.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := pool.Get(cfg.Pool)
	if err != nil {
		return nil, err
	}
	notation, _ := expr.ParseNotation(cfg.Notation)

	e := &Engine{
		cfg:      cfg,
		pool:     p,
		notation: notation,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Card builds a card over numbers using the engine's target and operator
// pool. Later options override those defaults.
func (e *Engine) Card(numbers []float64, opts ...card.Option) *card.Card {
	base := []card.Option{card.WithTarget(e.cfg.Target), card.WithOps(e.pool.Ops())}
	return card.New(numbers, append(base, opts...)...)
}

// Each calls fn for every solution of c in search order, stopping at the
// configured limit, on the first error from fn, or when ctx is done. It
// searches sequentially and never holds more than one solution.
func (e *Engine) Each(ctx context.Context, c *card.Card, fn func(Solution) error) error {
	index := 0
	for ops := range c.Assignments() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for n := range c.SolveAssignment(ops) {
			if e.cfg.Limit > 0 && index >= e.cfg.Limit {
				return nil
			}
			index++
			if err := fn(NewSolution(index, n)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run searches c and collects the report. With Workers > 1 the operator
// assignments are spread over a bounded group of goroutines; the solutions
// are still reported in sequential search order.
func (e *Engine) Run(ctx context.Context, c *card.Card) (Report, error) {
	start := time.Now()
	e.logger.Info("solving",
		zap.Stringer("card", c),
		zap.String("pool", e.pool.Name()),
		zap.Int("workers", e.cfg.Workers),
		zap.Int("assignments", c.AssignmentCount()))

	var (
		nodes []expr.Node
		err   error
	)
	if e.cfg.Workers > 1 {
		nodes, err = e.solveParallel(ctx, c)
	} else {
		nodes, err = e.solveSequential(ctx, c)
	}
	if err != nil {
		e.logger.Warn("search aborted", zap.Stringer("card", c), zap.Error(err))
		return Report{}, err
	}

	report := Report{
		Numbers: c.Numbers(),
		Target:  c.Target(),
		Pool:    e.pool.Name(),
	}
	if e.cfg.Limit > 0 && len(nodes) > e.cfg.Limit {
		nodes = nodes[:e.cfg.Limit]
		report.Truncated = true
	}
	report.Solutions = make([]Solution, len(nodes))
	for i, n := range nodes {
		report.Solutions[i] = NewSolution(i+1, n)
	}
	report.Count = len(report.Solutions)

	e.logger.Info("solved",
		zap.Stringer("card", c),
		zap.Int("solutions", report.Count),
		zap.Bool("truncated", report.Truncated),
		zap.Duration("elapsed", time.Since(start)))
	return report, nil
}

// solveSequential collects at most Limit+1 solutions so Run can tell whether
// the limit cut anything off.
func (e *Engine) solveSequential(ctx context.Context, c *card.Card) ([]expr.Node, error) {
	var nodes []expr.Node
	for ops := range c.Assignments() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for n := range c.SolveAssignment(ops) {
			nodes = append(nodes, n)
			if e.cfg.Limit > 0 && len(nodes) > e.cfg.Limit {
				return nodes, nil
			}
		}
	}
	return nodes, nil
}

// solveParallel partitions the search by operator assignment. Each partition
// writes only its own slot of results, so no locking is needed.
func (e *Engine) solveParallel(ctx context.Context, c *card.Card) ([]expr.Node, error) {
	assignments := slices.Collect(c.Assignments())
	results := make([][]expr.Node, len(assignments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, ops := range assignments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = slices.Collect(c.SolveAssignment(ops))
			if len(results[i]) > 0 {
				e.logger.Debug("partition solved",
					zap.Int("assignment", i),
					zap.Int("solutions", len(results[i])))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}
