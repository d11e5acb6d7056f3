package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/solve24/pkg/engine"
	"github.com/wildfunctions/solve24/pkg/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Solve cards interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Engine logs would draw over the alternate screen.
			e, err := engine.New(cfg.Engine)
			if err != nil {
				return err
			}
			return tui.Run(e, rand.New(rand.NewSource(time.Now().UnixNano())))
		},
	}
}
