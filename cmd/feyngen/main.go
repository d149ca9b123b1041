// SPDX-License-Identifier: MIT

// Command feyngen generates random Feynman diagrams, prints the reference
// fixtures and summarizes diagram samples.
//
//	feyngen generate --seed 42 --count 3 --inputs electron,positron
//	feyngen stats --count 1000 --mint-weight 0.8
//	feyngen fixtures box
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/feynman/generator"
	"github.com/katalvlaran/feynman/internal/config"
	"github.com/katalvlaran/feynman/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the persistent flags shared by every subcommand.
type app struct {
	configPath  string
	envFile     string
	verbose     bool
	showMetrics bool

	// generator overrides; applied only when the flag was set
	seed       int64
	count      int
	mintWeight float64
	maxIter    int
	inputs     []string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "feyngen",
		Short:         "Random Feynman diagram generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	pf.StringVar(&a.envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Log the generation trace at debug level")
	pf.BoolVar(&a.showMetrics, "metrics", false, "Print generator metrics after the run")

	root.AddCommand(a.generateCmd(), a.statsCmd(), a.fixturesCmd())
	return root
}

// generatorFlags registers the flags shared by generate and stats.
func (a *app) generatorFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int64Var(&a.seed, "seed", 0, "Random seed (default: from config, else the clock)")
	f.IntVarP(&a.count, "count", "n", 1, "Number of diagrams")
	f.Float64Var(&a.mintWeight, "mint-weight", generator.DefaultMintWeight, "Weight w in the mint probability w/virtuals")
	f.IntVar(&a.maxIter, "max-iterations", generator.DefaultMaxIterations, "Iteration cap per diagram")
	f.StringSliceVar(&a.inputs, "inputs", nil, "Two incoming kinds, e.g. electron,positron")
}

// load reads the config and applies flags the user set explicitly.
func (a *app) load(cmd *cobra.Command) (*config.Config, error) {
	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}
	cfg, err := config.Load(a.configPath, envFiles...)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Generator.Seed = &a.seed
	}
	if f.Changed("count") {
		cfg.Count = a.count
	}
	if f.Changed("mint-weight") {
		cfg.Generator.MintWeight = a.mintWeight
	}
	if f.Changed("max-iterations") {
		cfg.Generator.MaxIterations = a.maxIter
	}
	if f.Changed("inputs") {
		cfg.Generator.Inputs = a.inputs
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func (a *app) logger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// newGenerator wires config, logging and metrics into a generator.
func (a *app) newGenerator(cmd *cobra.Command, cfg *config.Config, reg *prometheus.Registry) (*generator.Generator, error) {
	opts, err := cfg.GeneratorOptions()
	if err != nil {
		return nil, err
	}
	log, err := a.logger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	opts = append(opts, generator.WithLogger(log), generator.WithMetrics(metrics.NewGenerator(reg)))
	return generator.New(opts...), nil
}
