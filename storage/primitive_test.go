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

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dolthub/bullet/buffer"
)

func TestNewPrimitiveIsZeroed(t *testing.T) {
	p := NewPrimitive[int64](4)
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, []int64{0, 0, 0, 0}, p.AsSlice())
}

func TestNewPrimitiveFromWrapsWithoutCopy(t *testing.T) {
	data := []float64{1.5, 2.5, 3.5}
	p := NewPrimitiveFrom(data)
	assert.Equal(t, 3, p.Len())
	data[0] = 9.5
	assert.Equal(t, 9.5, p.AsSlice()[0], "NewPrimitiveFrom must not copy")
}

func TestAsSliceMutWritesThrough(t *testing.T) {
	p := NewPrimitive[int32](3)
	mut := p.AsSliceMut()
	mut[1] = 42
	assert.Equal(t, int32(42), p.AsSlice()[1])
}

func TestBytesSize(t *testing.T) {
	assert.Equal(t, 8, NewPrimitive[int64](1).BytesSize())
	assert.Equal(t, 40, NewPrimitive[int64](5).BytesSize())
	assert.Equal(t, 4, NewPrimitive[int32](1).BytesSize())
	assert.Equal(t, 1, NewPrimitive[uint8](1).BytesSize())
	assert.Equal(t, 0, NewPrimitive[int64](0).BytesSize())
}

func TestClonePreservesIndependence(t *testing.T) {
	p := NewPrimitiveFrom([]int64{1, 2, 3})
	clone := p.Clone()
	clone.AsSliceMut()[0] = 100

	assert.Equal(t, int64(1), p.AsSlice()[0])
	assert.Equal(t, int64(100), clone.AsSlice()[0])
}

func TestAllocatePrimitiveBytesUsesManager(t *testing.T) {
	buf := AllocatePrimitiveBytes(buffer.Default, 4, 8)
	assert.Equal(t, 32, len(buf))
	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
}

func TestAllocatePrimitiveBytesNilManagerFallsBackToDefault(t *testing.T) {
	buf := AllocatePrimitiveBytes(nil, 2, 4)
	assert.Equal(t, 8, len(buf))
}

func TestAllocatePrimitiveBytesPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() {
		AllocatePrimitiveBytes(buffer.Default, -1, 8)
	})
}
