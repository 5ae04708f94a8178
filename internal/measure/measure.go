// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure times the containers of this module against baseline
// implementations and grades each operation by how much slower it is.
package measure

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// A Case is one timed operation.
// Setup builds fresh fixtures and returns the operation run against this
// module's container and the same operation run against the baseline.
type Case struct {
	Name  string
	Setup func(cfg Config) (ours, base func())
}

// A Result is the outcome of one Case.
type Result struct {
	Suite string
	Case  string
	Ours  time.Duration
	Base  time.Duration
	OK    bool
}

// Ratio returns how many times slower ours was than the baseline.
func (r Result) Ratio() float64 {
	return float64(r.Ours) / float64(max(r.Base, time.Nanosecond))
}

var suites = map[string][]Case{
	"map":    mapCases,
	"vector": vectorCases,
	"stack":  stackCases,
}

// SuiteNames returns the names of the available suites.
func SuiteNames() []string {
	return []string{"map", "vector", "stack"}
}

// Cases returns the cases of the named suite.
func Cases(suite string) ([]Case, bool) {
	cs, ok := suites[suite]
	return cs, ok
}

// A Runner executes the suites selected by its configuration.
type Runner struct {
	cfg Config
	log *zap.Logger
}

// NewRunner returns a Runner for cfg that logs to log.
func NewRunner(cfg Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, log: log}
}

// Run times every case of every selected suite. It stops between cases
// when ctx is done and returns the results gathered so far.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid measurement config")
	}
	var results []Result
	for _, suite := range r.cfg.Suites {
		cases, _ := Cases(suite)
		r.log.Info("running suite", zap.String("suite", suite), zap.Int("cases", len(cases)))
		for _, c := range cases {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res := r.runCase(suite, c)
			r.log.Debug("measured",
				zap.String("suite", suite),
				zap.String("case", c.Name),
				zap.Duration("ours", res.Ours),
				zap.Duration("base", res.Base),
				zap.Bool("ok", res.OK),
			)
			results = append(results, res)
		}
	}
	return results, nil
}

func (r *Runner) runCase(suite string, c Case) Result {
	ours, base := c.Setup(r.cfg)
	res := Result{
		Suite: suite,
		Case:  c.Name,
		Ours:  timeOf(ours),
		Base:  timeOf(base),
	}
	res.OK = res.Ratio() <= r.cfg.Ratio
	return res
}

func timeOf(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// Failed returns the number of results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK {
			n++
		}
	}
	return n
}

// loop runs f n times.
func loop(n int, f func(i int)) func() {
	return func() {
		for i := range n {
			f(i)
		}
	}
}
