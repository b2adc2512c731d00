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

// Package buffer provides the allocation seam array buffers are built
// through. The default Manager allocates straight from the Go heap; callers
// embedding the engine in a memory-constrained host can supply a Manager
// that tracks or pools allocations instead.
package buffer

import "sync"

// Manager mediates byte-slice allocation for array buffers. Implementations
// must be safe for concurrent use since independent kernel invocations may
// run on separate goroutines.
type Manager interface {
	// Allocate returns a zeroed byte slice of exactly n bytes.
	Allocate(n int) []byte

	// Release returns a slice previously obtained from Allocate. Callers
	// must not use buf after calling Release. Implementations that don't
	// pool memory may treat this as a no-op and let the GC reclaim it.
	Release(buf []byte)
}

// NopManager is the default Manager. It allocates directly from the process
// heap and performs no bookkeeping on release.
type NopManager struct{}

// Allocate implements Manager.
func (NopManager) Allocate(n int) []byte {
	return make([]byte, n)
}

// Release implements Manager.
func (NopManager) Release([]byte) {}

// Default is the shared NopManager instance used when callers don't thread
// an explicit Manager through construction.
var Default Manager = NopManager{}

// PooledManager buckets released buffers by capacity so that repeated
// builder churn of the same array shapes (typical of a pipeline re-running
// the same plan over many batches) can reuse backing storage instead of
// round-tripping through the allocator every batch.
type PooledManager struct {
	mu   sync.Mutex
	pool map[int][][]byte
}

// NewPooledManager returns a Manager that recycles released buffers.
func NewPooledManager() *PooledManager {
	return &PooledManager{pool: make(map[int][][]byte)}
}

// Allocate implements Manager.
func (m *PooledManager) Allocate(n int) []byte {
	m.mu.Lock()
	bucket := m.pool[n]
	var buf []byte
	if len(bucket) > 0 {
		buf = bucket[len(bucket)-1]
		m.pool[n] = bucket[:len(bucket)-1]
	}
	m.mu.Unlock()

	if buf != nil {
		for i := range buf {
			buf[i] = 0
		}
		return buf
	}
	return make([]byte, n)
}

// Release implements Manager.
func (m *PooledManager) Release(buf []byte) {
	if buf == nil {
		return
	}
	n := len(buf)
	m.mu.Lock()
	m.pool[n] = append(m.pool[n], buf)
	m.mu.Unlock()
}
