package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/solve24/pkg/pool"
)

func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List the operator pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range pool.Names() {
				p, err := pool.Get(name)
				if err != nil {
					return err
				}
				ops := make([]string, 0, len(p.Ops()))
				for _, op := range p.Ops() {
					ops = append(ops, op.Name)
				}
				marker := " "
				if name == cfg.Engine.Pool {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-10s %s\n", marker, name, strings.Join(ops, " "))
			}
			return nil
		},
	}
}
