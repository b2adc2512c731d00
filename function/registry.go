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

package function

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"

	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
	"github.com/dolthub/bullet/internal/enginelog"
)

const defaultPlanCacheSize = 512

// Registry holds every known ScalarFunction by name and alias, and caches
// recent (name, input-types) plans so repeated planning of the same
// expression shape (common across rows of a query plan tree) skips
// signature matching. Plan-cache entries are keyed by an xxh3 fingerprint of
// the (name, input types) shape rather than the shape's raw string form, so
// a deeply nested List-of-List-of-Decimal input costs the cache no more than
// a plain scalar one.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]*ScalarFunction
	planCache *lru.Cache[uint64, *PlannedScalarFunction]
	log       *zap.Logger
}

// NewRegistry constructs an empty Registry with the default plan-cache size
// and a no-op logger; call SetLogger to attach diagnostics.
func NewRegistry() *Registry {
	return newRegistryWithCacheSize(defaultPlanCacheSize)
}

// NewRegistryWithCacheSize is NewRegistry with an explicit plan-cache
// capacity, the knob config.FunctionConfig.PlanCacheSize controls.
func NewRegistryWithCacheSize(size int) *Registry {
	return newRegistryWithCacheSize(size)
}

func newRegistryWithCacheSize(size int) *Registry {
	cache, err := lru.New[uint64, *PlannedScalarFunction](size)
	if err != nil {
		// Only returns an error for a non-positive size; callers outside
		// config.Validate's guard get a clear panic rather than a silently
		// disabled cache.
		panic(err)
	}
	return &Registry{
		functions: make(map[string]*ScalarFunction),
		planCache: cache,
		log:       enginelog.Nop(),
	}
}

// SetLogger attaches a structured logger for registration and planning
// diagnostics.
func (r *Registry) SetLogger(log *zap.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = log
}

// Register adds fn under its Name and every declared Alias. Registering a
// name or alias already present overwrites the prior entry.
func (r *Registry) Register(fn *ScalarFunction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions[fn.Name] = fn
	for _, alias := range fn.Aliases {
		r.functions[alias] = fn
	}
	r.log.Debug("registered scalar function", enginelog.Component("function.registry"), zap.String("name", fn.Name), zap.Strings("aliases", fn.Aliases))
}

// Lookup returns the ScalarFunction registered under name or alias.
func (r *Registry) Lookup(name string) (*ScalarFunction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[name]
	return fn, ok
}

// Plan resolves name to its ScalarFunction and plans it against inputs,
// serving from the plan cache when the exact (name, input types) shape was
// planned before.
func (r *Registry) Plan(name string, inputs []datatype.DataType) (*PlannedScalarFunction, error) {
	key := planCacheKey(name, inputs)
	if cached, ok := r.planCache.Get(key); ok {
		return cached, nil
	}

	fn, ok := r.Lookup(name)
	if !ok {
		return nil, errs.Newf(errs.InvalidInputTypes, "function: no function registered under name %q", name)
	}
	plan, err := fn.PlanTyped(inputs, nil)
	if err != nil {
		r.log.Debug("planning failed", enginelog.Component("function.registry"), zap.String("name", name), zap.Error(err))
		return nil, err
	}
	r.planCache.Add(key, plan)
	return plan, nil
}

func planCacheKey(name string, inputs []datatype.DataType) uint64 {
	var b strings.Builder
	b.WriteString(name)
	for _, dt := range inputs {
		b.WriteByte('|')
		b.WriteString(dt.String())
	}
	return xxh3.HashString(b.String())
}
