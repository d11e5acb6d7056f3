package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wildfunctions/solve24/pkg/engine"
	"github.com/wildfunctions/solve24/pkg/pool"
)

// errNoSolvableCard is returned when every dealt card was unsolvable.
var errNoSolvableCard = errors.New("no solvable card dealt")

func newDealCmd() *cobra.Command {
	var (
		seed     int64
		attempts int
		size     int
		show     bool
	)
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal random cards until one is solvable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			return runDeal(cmd, rand.New(rand.NewSource(seed)), size, attempts, show)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = random)")
	cmd.Flags().IntVar(&attempts, "attempts", 100, "cards to deal before giving up")
	cmd.Flags().IntVar(&size, "size", 4, "numbers per card")
	cmd.Flags().BoolVar(&show, "show", false, "print the solutions of the dealt card")
	return cmd
}

func runDeal(cmd *cobra.Command, rng *rand.Rand, size, attempts int, show bool) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	for i := 1; i <= attempts; i++ {
		c := e.Card(pool.Deal(rng, size))
		report, err := e.Run(contextOf(cmd), c)
		if err != nil {
			return err
		}
		if report.Count == 0 {
			logger.Debug("unsolvable card", zap.Stringer("card", c), zap.Int("attempt", i))
			continue
		}

		fmt.Fprintf(out, "%s: %s\n", c, plural(report.Count, "solution"))
		if show {
			return engine.Write(out, report, cfg.Engine)
		}
		return nil
	}
	return fmt.Errorf("%w after %d attempts", errNoSolvableCard, attempts)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

