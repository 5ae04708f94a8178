// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"os"
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config controls a measurement run.
type Config struct {
	// Elements is the size of the fixture each case starts from.
	Elements int `yaml:"elements"`
	// Loops is the repeat count for operations too fast to time once.
	Loops int `yaml:"loops"`
	// Ratio is how many times slower than the baseline a case may be
	// and still pass.
	Ratio  float64  `yaml:"ratio"`
	Suites []string `yaml:"suites"`
	// Strict makes a failing case fail the run.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Elements: 10001,
		Loops:    10000,
		Ratio:    20,
		Suites:   SuiteNames(),
	}
}

// LoadConfig reads a YAML configuration from path on top of the defaults.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading measurement config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting in c.
func (c Config) Validate() error {
	switch {
	case c.Elements <= 0:
		return errors.Newf("elements must be positive, got %d", c.Elements)
	case c.Loops <= 0:
		return errors.Newf("loops must be positive, got %d", c.Loops)
	case c.Ratio <= 0:
		return errors.Newf("ratio must be positive, got %v", c.Ratio)
	case len(c.Suites) == 0:
		return errors.New("no suites selected")
	}
	for _, s := range c.Suites {
		if !slices.Contains(SuiteNames(), s) {
			return errors.Newf("unknown suite %q", s)
		}
	}
	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
