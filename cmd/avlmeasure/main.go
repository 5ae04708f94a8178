// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Avlmeasure times the containers in rsc.io/avlmap against baseline
// implementations and reports which operations are within the allowed
// slowdown.
//
// Usage:
//
//	avlmeasure [flags] [suite...]
//	avlmeasure config
//
// Suites are map, vector and stack; all run by default.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rsc.io/avlmap/internal/measure"
)

type options struct {
	configPath string
	elements   int
	loops      int
	ratio      float64
	strict     bool
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "avlmeasure: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "avlmeasure [suite...]",
		Short:         "Time the avlmap containers against baselines",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg, opts.verbose)
		},
	}
	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	f.IntVar(&opts.elements, "elements", 0, "fixture size (overrides config)")
	f.IntVar(&opts.loops, "loops", 0, "repeat count for fast operations (overrides config)")
	f.Float64Var(&opts.ratio, "ratio", 0, "allowed slowdown against the baseline (overrides config)")
	f.BoolVar(&opts.strict, "strict", false, "exit with an error when a case fails")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every measurement")

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd, nil)
			if err != nil {
				return err
			}
			out, err := cfg.Marshal()
			if err != nil {
				return errors.Wrap(err, "encoding config")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})
	return root
}

// config loads the configuration file and applies flag overrides.
func (o *options) config(cmd *cobra.Command, suites []string) (measure.Config, error) {
	cfg, err := measure.LoadConfig(o.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("elements") {
		cfg.Elements = o.elements
	}
	if flags.Changed("loops") {
		cfg.Loops = o.loops
	}
	if flags.Changed("ratio") {
		cfg.Ratio = o.ratio
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if len(suites) > 0 {
		cfg.Suites = suites
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func run(ctx context.Context, cmd *cobra.Command, cfg measure.Config, verbose bool) error {
	log, err := newLogger(verbose)
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer log.Sync()

	results, err := measure.NewRunner(cfg, log).Run(ctx)
	failed := measure.Report(cmd.OutOrStdout(), results)
	if err != nil {
		return err
	}
	if failed > 0 {
		log.Warn("cases slower than allowed", zap.Int("failed", failed), zap.Float64("ratio", cfg.Ratio))
		if cfg.Strict {
			return errors.Newf("%d of %d cases failed", failed, len(results))
		}
	}
	return nil
}
