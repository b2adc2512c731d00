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

// Package bullet wires the array runtime's ambient stack (configuration,
// logging, and the scalar function registry) into a single embeddable
// Engine, the shape an external planner obtains and holds for the lifetime
// of a session.
package bullet

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dolthub/bullet/config"
	"github.com/dolthub/bullet/function"
	"github.com/dolthub/bullet/internal/enginelog"
)

// Engine bundles a configured scalar function Registry with the logger and
// settings it was built from. ID distinguishes this Engine's log lines from
// another instance embedded in the same process (e.g. one per test, or one
// per tenant in a multi-engine host).
type Engine struct {
	ID       uuid.UUID
	Config   config.Config
	Registry *function.Registry
	Log      *zap.Logger
}

// New builds an Engine from cfg: a logger at the configured level, and a
// Registry sized from cfg.Function.PlanCacheSize with every built-in
// kernel-backed function registered.
func New(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	id := uuid.New()
	log, err := enginelog.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("engine_id", id.String()))

	reg := function.NewRegistryWithCacheSize(cfg.Function.PlanCacheSize)
	reg.SetLogger(log)
	function.RegisterBuiltins(reg)

	return &Engine{ID: id, Config: cfg, Registry: reg, Log: log}, nil
}
