// SPDX-License-Identifier: MIT

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random diagrams and print their vertices and particles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			g, err := a.newGenerator(cmd, cfg, reg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printProcess(out, g.InputKinds(), g.OutputKinds())
			for i := 1; i <= cfg.Count; i++ {
				d, err := g.Generate()
				if err != nil {
					return err
				}
				if err := printDiagram(out, i, d); err != nil {
					return err
				}
			}
			if a.showMetrics {
				return printMetrics(out, reg)
			}
			return nil
		},
	}
	a.generatorFlags(cmd)
	return cmd
}
