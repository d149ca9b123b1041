// SPDX-License-Identifier: MIT

// Package config loads feyngen settings from a YAML file, a .env file and
// FEYNGEN_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/generator"
)

// Environment variables that override the file.
const (
	EnvSeed          = "FEYNGEN_SEED"
	EnvCount         = "FEYNGEN_COUNT"
	EnvMintWeight    = "FEYNGEN_MINT_WEIGHT"
	EnvMaxIterations = "FEYNGEN_MAX_ITERATIONS"
	EnvInputs        = "FEYNGEN_INPUTS"
	EnvLogLevel      = "FEYNGEN_LOG_LEVEL"
)

// ErrInvalid indicates a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the full feyngen configuration.
type Config struct {
	Generator struct {
		// Seed fixes the random stream; nil seeds from the clock.
		Seed *int64 `yaml:"seed"`
		// Inputs names the two incoming kinds (e.g. ["electron", "positron"]);
		// empty draws them at random.
		Inputs        []string `yaml:"inputs"`
		MintWeight    float64  `yaml:"mint_weight"`
		MaxIterations int      `yaml:"max_iterations"`
	} `yaml:"generator"`

	// Count is the number of diagrams per run.
	Count int `yaml:"count"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{Count: 1}
	cfg.Generator.MintWeight = generator.DefaultMintWeight
	cfg.Generator.MaxIterations = generator.DefaultMaxIterations
	cfg.Log.Level = "info"
	return cfg
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the given .env files (".env" when none is given, missing
// files ignored) and the process environment.
func Load(path string, envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := Default()
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSeed, v)
		}
		c.Generator.Seed = &seed
	}
	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvCount, v)
		}
		c.Count = n
	}
	if v := os.Getenv(EnvMintWeight); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMintWeight, v)
		}
		c.Generator.MintWeight = w
	}
	if v := os.Getenv(EnvMaxIterations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMaxIterations, v)
		}
		c.Generator.MaxIterations = n
	}
	if v := os.Getenv(EnvInputs); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		c.Generator.Inputs = parts
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks every setting without building anything.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%w: count %d < 1", ErrInvalid, c.Count)
	}
	if !(c.Generator.MintWeight > 0) || math.IsInf(c.Generator.MintWeight, 1) {
		return fmt.Errorf("%w: mint_weight %v <= 0", ErrInvalid, c.Generator.MintWeight)
	}
	if c.Generator.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations %d < 1", ErrInvalid, c.Generator.MaxIterations)
	}
	if _, err := c.inputKinds(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) inputKinds() ([]core.Kind, error) {
	in := c.Generator.Inputs
	if len(in) == 0 {
		return nil, nil
	}
	if len(in) != 2 {
		return nil, fmt.Errorf("%w: inputs needs two kinds, got %d", ErrInvalid, len(in))
	}
	kinds := make([]core.Kind, 2)
	for i, s := range in {
		k, err := core.ParseKind(s)
		if err != nil {
			return nil, fmt.Errorf("%w: inputs: %w", ErrInvalid, err)
		}
		kinds[i] = k
	}
	return kinds, nil
}

// LogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// GeneratorOptions translates the generator settings into options.
func (c *Config) GeneratorOptions() ([]generator.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []generator.Option{
		generator.WithMintWeight(c.Generator.MintWeight),
		generator.WithMaxIterations(c.Generator.MaxIterations),
	}
	if c.Generator.Seed != nil {
		opts = append(opts, generator.WithSeed(*c.Generator.Seed))
	}
	kinds, _ := c.inputKinds()
	if kinds != nil {
		opts = append(opts, generator.WithInputKinds(kinds[0], kinds[1]))
	}
	return opts, nil
}
