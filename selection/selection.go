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

// Package selection implements the logical-row-to-physical-row remapping
// used to express filtering, slicing, and constant broadcast without
// touching the underlying data buffers.
package selection

import "fmt"

// Vector is an ordered sequence of physical row indices. Duplication and
// reordering are both permitted, so a Vector can express a filter, a
// permutation, or a broadcast of a single row.
type Vector struct {
	indices []uint32
}

// WithRange builds the identity permutation over [start, end).
func WithRange(start, end int) Vector {
	if end < start {
		panic(fmt.Sprintf("selection: invalid range [%d, %d)", start, end))
	}
	idx := make([]uint32, end-start)
	for i := range idx {
		idx[i] = uint32(start + i)
	}
	return Vector{indices: idx}
}

// Repeated returns a selection vector of length n where every entry points
// at physical row k. It is used to broadcast a single-row constant across n
// logical rows without allocating n copies of the underlying value.
func Repeated(n int, k uint32) Vector {
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = k
	}
	return Vector{indices: idx}
}

// FromIndices builds a selection vector directly from a slice of physical
// row indices. The input is copied; callers retain ownership of idx.
func FromIndices(idx []int) Vector {
	out := make([]uint32, len(idx))
	for i, v := range idx {
		if v < 0 {
			panic(fmt.Sprintf("selection: negative index %d at position %d", v, i))
		}
		out[i] = uint32(v)
	}
	return Vector{indices: out}
}

// FromIndicesU32 builds a selection vector from an existing []uint32 of
// physical row indices, copying it so the Vector owns its own backing
// array. Used when composing through an already-materialized dictionary
// index buffer.
func FromIndicesU32(idx []uint32) Vector {
	out := make([]uint32, len(idx))
	copy(out, idx)
	return Vector{indices: out}
}

// Len returns the logical length described by the selection.
func (v Vector) Len() int {
	return len(v.indices)
}

// Get returns the physical row index selected at logical position i.
func (v Vector) Get(i int) (uint32, error) {
	if i < 0 || i >= len(v.indices) {
		return 0, fmt.Errorf("selection: logical index %d out of bounds for length %d", i, len(v.indices))
	}
	return v.indices[i], nil
}

// MustGet is like Get but panics on out-of-bounds access. Used internally
// once bounds have already been validated by a caller such as Array.
func (v Vector) MustGet(i int) uint32 {
	idx, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return idx
}

// Slice returns the portion of the selection covering logical rows
// [offset, offset+count).
func (v Vector) Slice(offset, count int) Vector {
	if offset < 0 || count < 0 || offset+count > len(v.indices) {
		panic(fmt.Sprintf("selection: slice [%d:%d] out of bounds for length %d", offset, offset+count, len(v.indices)))
	}
	out := make([]uint32, count)
	copy(out, v.indices[offset:offset+count])
	return Vector{indices: out}
}

// Compose applies other on top of v, producing a new selection s3 such that
// s3[i] = v[other[i]]. This is the law that lets repeated select() calls on
// an already-selected array behave as if applied directly to the original
// data: composing never mutates either input in place.
func (v Vector) Compose(other Vector) Vector {
	out := make([]uint32, other.Len())
	for i, oi := range other.indices {
		out[i] = v.indices[oi]
	}
	return Vector{indices: out}
}

// Indices returns the raw physical row indices backing the selection. The
// returned slice must not be mutated by the caller.
func (v Vector) Indices() []uint32 {
	return v.indices
}
