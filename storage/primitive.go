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

// Package storage implements the physical buffers backing Array primary and
// secondary data: contiguous fixed-width primitive buffers and the three
// interchangeable variable-length byte-string layouts.
package storage

import (
	"fmt"

	"github.com/dolthub/bullet/buffer"
)

// Primitive is a contiguous, aligned buffer of fixed-size element T. It
// carries no per-element null encoding; validity lives in a separate
// bitmap.Bitmap owned by the Array.
type Primitive[T any] struct {
	data []T
}

// NewPrimitive allocates a zeroed Primitive buffer of length n.
func NewPrimitive[T any](n int) *Primitive[T] {
	return &Primitive[T]{data: make([]T, n)}
}

// NewPrimitiveFrom wraps an existing slice without copying. Used by scans
// wrapping foreign buffers.
func NewPrimitiveFrom[T any](data []T) *Primitive[T] {
	return &Primitive[T]{data: data}
}

// Len returns the number of elements in the buffer.
func (p *Primitive[T]) Len() int {
	return len(p.data)
}

// AsSlice returns a read-only view of the buffer contents.
func (p *Primitive[T]) AsSlice() []T {
	return p.data
}

// AsSliceMut returns exclusive write access to the buffer contents. Callers
// must hold unique ownership of the Primitive before calling this; shared
// secondary buffers are expected to clone-on-write before mutating.
func (p *Primitive[T]) AsSliceMut() []T {
	return p.data
}

// BytesSize returns the size, in bytes, of the element storage excluding
// any Go slice header overhead.
func (p *Primitive[T]) BytesSize() int {
	var zero T
	return len(p.data) * sizeOf(zero)
}

// sizeOf approximates unsafe.Sizeof for the element types this engine
// stores (integers, floats, and the Interval struct). It avoids importing
// unsafe at this layer by dispatching on concrete types the rest of the
// package ever instantiates Primitive with.
func sizeOf(v any) int {
	switch v.(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	case [2]uint64: // int128/uint128 represented as two uint64 words
		return 16
	default:
		return 16 // Interval{months,days,nanos} and other 16-byte structs
	}
}

// Clone returns an independent copy of the buffer, used to implement
// copy-on-write semantics when a shared secondary buffer must be mutated.
func (p *Primitive[T]) Clone() *Primitive[T] {
	out := make([]T, len(p.data))
	copy(out, p.data)
	return &Primitive[T]{data: out}
}

// AllocatePrimitiveBytes is a thin helper for callers that need a
// buffer.Manager-routed byte allocation sized for n elements of width
// bytesPerElem, e.g. to back a Primitive[T] through a pooled Manager rather
// than a bare make(). The returned bytes are zeroed.
func AllocatePrimitiveBytes(m buffer.Manager, n, bytesPerElem int) []byte {
	if m == nil {
		m = buffer.Default
	}
	if n < 0 || bytesPerElem < 0 {
		panic(fmt.Sprintf("storage: invalid allocation request n=%d bytesPerElem=%d", n, bytesPerElem))
	}
	return m.Allocate(n * bytesPerElem)
}
