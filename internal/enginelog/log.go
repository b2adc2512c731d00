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

// Package enginelog is the structured logging entry point shared by every
// package in this module that needs to log. Its call sites are in
// function.Registry, which logs function registration and planning
// failures.
package enginelog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger from the textual level and development/production
// mode, matching the two presets most embedders need: human-readable
// development output or JSON production output.
func New(level string, development bool) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// Nop returns a logger that discards everything, used by default in
// packages that accept an optional *zap.Logger for diagnostics.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// Component is the standard first field every log call site in this module
// attaches so messages can be filtered by subsystem (registry, executor,
// kernel/arith, ...).
func Component(name string) zap.Field {
	return zap.String("component", name)
}
