// SPDX-License-Identifier: MIT

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/feynman/stats"
)

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate a sample of diagrams and summarize their size and loop order",
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
			samples, err := stats.Collect(cfg.Count, g)
			if err != nil {
				return err
			}
			sum, err := stats.Summarize(samples)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printProcess(out, g.InputKinds(), g.OutputKinds())
			printSummary(out, sum)
			if a.showMetrics {
				return printMetrics(out, reg)
			}
			return nil
		},
	}
	a.generatorFlags(cmd)
	return cmd
}
