// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/ajroetker/go-radixsort/radix"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"
)

var (
	errConfigFileNotFound = errors.New("config file not found")
	errConfigFileRead     = errors.New("cannot read config file")
	errConfigInvalid      = errors.New("invalid config file")
	errUnknownKeyType     = errors.New("unknown key type")
	errNoKeyTypes         = errors.New("keys cannot be empty")
	errSizeRange          = errors.New("min_size must be in 1..max_size")
	errIterations         = errors.New("iterations must be positive")
	errUnknownScatter     = errors.New("unknown scatter mode")
	errSortMismatch       = errors.New("sort produced wrong result")
)

// Key type names accepted by --keys.
const (
	keysUint32  = "uint32"
	keysUint64  = "uint64"
	keysFloat32 = "float32"
)

// Config holds all driver options.
type Config struct {
	Keys       []string `json:"keys,omitempty"`
	MinSize    int      `json:"min_size,omitempty"` //nolint:tagliatelle // snake_case for config file
	MaxSize    int      `json:"max_size,omitempty"` //nolint:tagliatelle // snake_case for config file
	Iterations int      `json:"iterations,omitempty"`
	Seed       uint64   `json:"seed,omitempty"`
	Parallel   bool     `json:"parallel,omitempty"`
	Scatter    string   `json:"scatter,omitempty"`
	Out        string   `json:"out,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Keys:       []string{keysUint32, keysUint64, keysFloat32},
		MinSize:    32,
		MaxSize:    65536,
		Iterations: 100,
		Seed:       1,
		Scatter:    radix.DefaultScatter().String(),
	}
}

// registerFlags binds the driver flags to cfg. Flag defaults are the
// values already in cfg.
func registerFlags(fs *pflag.FlagSet, cfg *Config) (configPath *string, verbose *bool) {
	configPath = fs.StringP("config", "c", "", "JSONC config file")
	verbose = fs.BoolP("verbose", "v", false, "log every measurement")
	fs.StringSliceVarP(&cfg.Keys, "keys", "k", cfg.Keys, "key types to benchmark (uint32,uint64,float32)")
	fs.IntVar(&cfg.MinSize, "min-size", cfg.MinSize, "smallest array size")
	fs.IntVar(&cfg.MaxSize, "max-size", cfg.MaxSize, "largest array size")
	fs.IntVarP(&cfg.Iterations, "iterations", "n", cfg.Iterations, "iterations per size")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "run key types concurrently")
	fs.StringVar(&cfg.Scatter, "scatter", cfg.Scatter, "payload scatter mode (copy|swap)")
	fs.StringVarP(&cfg.Out, "out", "o", cfg.Out, "write the JSON report to this file")

	return configPath, verbose
}

// LoadConfig resolves the configuration with the following precedence
// (highest wins):
// 1. Defaults
// 2. Config file at configPath (if non-empty, must exist)
// 3. Flags explicitly set on fs.
//
// flagged holds the values parsed from fs.
func LoadConfig(configPath string, fs *pflag.FlagSet, flagged Config) (Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		fileCfg, err := loadConfigFile(configPath)
		if err != nil {
			return Config{}, err
		}

		cfg = mergeConfig(cfg, fileCfg)
	}

	cfg = applyFlags(cfg, fs, flagged)

	err := validateConfig(cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadConfigFile(path string) (Config, error) {
	_, statErr := os.Stat(path)
	if statErr != nil {
		return Config{}, errors.Wrap(errConfigFileNotFound, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return Config{}, errors.Wrap(errConfigFileRead, path)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(errConfigInvalid, "%s: %v", path, err)
	}

	return cfg, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid JSONC")
	}

	var cfg Config

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	err = dec.Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid JSON")
	}

	return cfg, nil
}

func mergeConfig(base, overlay Config) Config {
	if len(overlay.Keys) > 0 {
		base.Keys = overlay.Keys
	}

	if overlay.MinSize != 0 {
		base.MinSize = overlay.MinSize
	}

	if overlay.MaxSize != 0 {
		base.MaxSize = overlay.MaxSize
	}

	if overlay.Iterations != 0 {
		base.Iterations = overlay.Iterations
	}

	if overlay.Seed != 0 {
		base.Seed = overlay.Seed
	}

	if overlay.Parallel {
		base.Parallel = true
	}

	if overlay.Scatter != "" {
		base.Scatter = overlay.Scatter
	}

	if overlay.Out != "" {
		base.Out = overlay.Out
	}

	return base
}

func applyFlags(cfg Config, fs *pflag.FlagSet, flagged Config) Config {
	if fs == nil {
		return cfg
	}

	if fs.Changed("keys") {
		cfg.Keys = flagged.Keys
	}

	if fs.Changed("min-size") {
		cfg.MinSize = flagged.MinSize
	}

	if fs.Changed("max-size") {
		cfg.MaxSize = flagged.MaxSize
	}

	if fs.Changed("iterations") {
		cfg.Iterations = flagged.Iterations
	}

	if fs.Changed("seed") {
		cfg.Seed = flagged.Seed
	}

	if fs.Changed("parallel") {
		cfg.Parallel = flagged.Parallel
	}

	if fs.Changed("scatter") {
		cfg.Scatter = flagged.Scatter
	}

	if fs.Changed("out") {
		cfg.Out = flagged.Out
	}

	return cfg
}

func validateConfig(cfg Config) error {
	if len(cfg.Keys) == 0 {
		return errNoKeyTypes
	}

	for _, k := range cfg.Keys {
		switch strings.TrimSpace(k) {
		case keysUint32, keysUint64, keysFloat32:
		default:
			return errors.Wrap(errUnknownKeyType, k)
		}
	}

	if cfg.MinSize < 1 || cfg.MinSize > cfg.MaxSize {
		return errors.Wrapf(errSizeRange, "min_size=%d max_size=%d", cfg.MinSize, cfg.MaxSize)
	}

	if cfg.Iterations < 1 {
		return errIterations
	}

	if _, ok := radix.ParseScatter(cfg.Scatter); !ok {
		return errors.Wrap(errUnknownScatter, cfg.Scatter)
	}

	return nil
}

// FormatConfig returns the config as formatted JSON.
func FormatConfig(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to format config")
	}

	return string(data), nil
}
