// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/feynman/fixtures"
)

func (a *app) fixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures [name...]",
		Short: "List the reference diagrams, or print the named ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, f := range fixtures.All() {
					fmt.Fprintf(out, "%-13s loops=%d  %s\n", f.Name, f.Loops, f.Title)
				}
				return nil
			}
			for i, name := range args {
				f, err := fixtures.Lookup(name)
				if err != nil {
					return err
				}
				d, err := f.Build()
				if err != nil {
					return err
				}
				headerColor.Fprintf(out, "%s: %s\n", f.Name, f.Title)
				if err := printDiagram(out, i+1, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
