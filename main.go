// Command solve24 finds every way to combine a card of numbers into a
// target value with + - * and /.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wildfunctions/solve24/pkg/config"
	"github.com/wildfunctions/solve24/pkg/engine"
	"github.com/wildfunctions/solve24/pkg/input"
	"github.com/wildfunctions/solve24/pkg/logging"
	"github.com/wildfunctions/solve24/pkg/pool"
)

var (
	// logger is built in PersistentPreRunE and synced in PersistentPostRun.
	logger = zap.NewNop()
	// cfg is the effective configuration: file, then env, then flags.
	cfg = config.DefaultConfig()
)

// rootFlags holds the flag values shared by every command.
type rootFlags struct {
	configPath string
	verbose    bool
	engine     engine.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{engine: engine.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "solve24 [numbers...]",
		Short: "Find every expression that combines the numbers into the target",
		Long: `solve24 searches every ordering of the numbers, every assignment of
operators and every bracketing, and prints the expressions that evaluate to
the target (24 by default).

Numbers may be given as separate arguments or comma separated:
  solve24 1 3 4 6
  solve24 1,4,5,6 --notation prefix`,
		// Card values are positional and must not be taken for subcommands.
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSolve(cmd, input.ParseArgs(args))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.DefaultPath, "config file (YAML)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.Float64VarP(&flags.engine.Target, "target", "t", flags.engine.Target, "target value")
	pf.StringVar(&flags.engine.Pool, "pool", flags.engine.Pool, "operator pool ("+strings.Join(pool.Names(), ", ")+")")
	pf.IntVar(&flags.engine.Workers, "workers", flags.engine.Workers, "parallel search workers (1 = sequential)")
	pf.IntVar(&flags.engine.Limit, "limit", flags.engine.Limit, "stop after this many solutions (0 = all)")
	pf.StringVar(&flags.engine.Format, "format", flags.engine.Format, "output format (text, json, yaml, markdown, pretty)")
	pf.StringVar(&flags.engine.Notation, "notation", flags.engine.Notation, "expression notation (infix, prefix, postfix)")
	pf.BoolVar(&flags.engine.Explain, "explain", flags.engine.Explain, "show the evaluation steps of each solution")

	rootCmd.AddCommand(
		newDealCmd(),
		newPoolsCmd(),
		newConfigCmd(),
		newServeCmd(),
		newTUICmd(),
	)
	return rootCmd
}

// setup loads the config, applies explicitly set flags and builds the logger.
func setup(cmd *cobra.Command, flags *rootFlags) error {
	loaded, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &loaded.Engine, flags.engine)
	if flags.verbose {
		loaded.Logging.Level = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(loaded.Logging)
	if err != nil {
		return err
	}
	cfg, logger = loaded, l
	logger.Debug("configuration loaded",
		zap.String("path", flags.configPath),
		zap.Any("engine", cfg.Engine))
	return nil
}

// applyFlags copies only the flags the user set, so config file values
// survive flag defaults.
func applyFlags(cmd *cobra.Command, dst *engine.Config, src engine.Config) {
	changed := cmd.Flags().Changed
	if changed("target") {
		dst.Target = src.Target
	}
	if changed("pool") {
		dst.Pool = src.Pool
	}
	if changed("workers") {
		dst.Workers = src.Workers
	}
	if changed("limit") {
		dst.Limit = src.Limit
	}
	if changed("format") {
		dst.Format = src.Format
	}
	if changed("notation") {
		dst.Notation = src.Notation
	}
	if changed("explain") {
		dst.Explain = src.Explain
	}
}

func newEngine() (*engine.Engine, error) {
	return engine.New(cfg.Engine, engine.WithLogger(logger))
}

func runSolve(cmd *cobra.Command, numbers []float64) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	report, err := e.Run(contextOf(cmd), e.Card(numbers))
	if err != nil {
		return err
	}
	if err := engine.Write(cmd.OutOrStdout(), report, cfg.Engine); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// contextOf returns the command's context, which is nil when a command is
// invoked directly instead of through Execute.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
