// Copyright 2021 Dolthub, Inc.
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

// Package config loads the ambient engine configuration embedders supply
// alongside the array runtime: plan-cache sizing, logging verbosity, and
// the division-by-zero policy documented for the arithmetic kernels.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/dolthub/bullet/errs"
)

// DivisionByZeroPolicy names the documented behavior integer division and
// remainder kernels apply when the divisor is zero.
type DivisionByZeroPolicy string

const (
	// DivisionByZeroNull produces a NULL output for that row. This is the
	// default: none of the kernel's typed errors name a data-dependent
	// runtime condition, and NULL is a value callers already branch on.
	DivisionByZeroNull DivisionByZeroPolicy = "null"
	// DivisionByZeroError names the error-aborting alternative. It passes
	// Validate, but the arithmetic kernels do not read this setting: they
	// produce NULL for a zero divisor whichever policy is configured.
	DivisionByZeroError DivisionByZeroPolicy = "error"
)

// Config is the root of the engine's ambient, file-backed settings.
type Config struct {
	Runtime  RuntimeConfig  `toml:"runtime"`
	Logging  LoggingConfig  `toml:"logging"`
	Function FunctionConfig `toml:"function"`
}

// RuntimeConfig governs array/executor behavior.
type RuntimeConfig struct {
	DivisionByZero DivisionByZeroPolicy `toml:"division_by_zero"`
}

// LoggingConfig governs the zap-backed structured logger in enginelog.
type LoggingConfig struct {
	Level       string `toml:"level"`       // "debug", "info", "warn", "error"
	Development bool   `toml:"development"` // use zap's human-readable development encoder
}

// FunctionConfig governs the scalar function registry.
type FunctionConfig struct {
	PlanCacheSize int `toml:"plan_cache_size"`
}

// Default returns the configuration this runtime uses when no file is
// supplied: NULL-on-zero-divisor, info-level production logging, and the
// registry's default plan cache size.
func Default() Config {
	return Config{
		Runtime: RuntimeConfig{DivisionByZero: DivisionByZeroNull},
		Logging: LoggingConfig{Level: "info", Development: false},
		Function: FunctionConfig{PlanCacheSize: 512},
	}
}

// Load parses a TOML document into Config, starting from Default so an
// embedder's file may override only the fields it cares about.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errs.Wrap(err, "config: failed to parse TOML")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings combinations the runtime cannot act on.
func (c Config) Validate() error {
	switch c.Runtime.DivisionByZero {
	case DivisionByZeroNull, DivisionByZeroError:
	default:
		return errs.Newf(errs.InvalidInputTypes, "config: unknown runtime.division_by_zero policy %q", c.Runtime.DivisionByZero)
	}
	if c.Function.PlanCacheSize <= 0 {
		return errs.Newf(errs.InvalidInputTypes, "config: function.plan_cache_size must be positive, got %d", c.Function.PlanCacheSize)
	}
	return nil
}
