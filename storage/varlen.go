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

import "encoding/binary"

// Varlen is the common interface satisfied by all three variable-length
// byte-string layouts. The engine accepts any of them on read and picks one
// on construction; kernels operate against this interface and never care
// which layout backs a given Utf8/Binary array.
type Varlen interface {
	Len() int
	Get(i int) []byte
	Push(v []byte)
	DataSizeBytes() int
}

// inlineLen is the German-style inline threshold: values of this length or
// shorter are stored entirely within the View descriptor.
const inlineLen = 12

// --- Small-offset layout -----------------------------------------------

// SmallOffset stores row boundaries as i32 offsets into a shared byte heap.
// Total heap size must stay within 2^31-1 bytes.
type SmallOffset struct {
	offsets []int32
	data    []byte
}

// NewSmallOffset returns an empty small-offset buffer.
func NewSmallOffset() *SmallOffset {
	return &SmallOffset{offsets: []int32{0}}
}

func (s *SmallOffset) Len() int { return len(s.offsets) - 1 }

func (s *SmallOffset) Get(i int) []byte {
	return s.data[s.offsets[i]:s.offsets[i+1]]
}

func (s *SmallOffset) Push(v []byte) {
	if int64(len(s.data)+len(v)) > int64(1<<31-1) {
		panic("storage: small-offset buffer exceeds 2^31-1 byte limit")
	}
	s.data = append(s.data, v...)
	s.offsets = append(s.offsets, int32(len(s.data)))
}

func (s *SmallOffset) DataSizeBytes() int { return len(s.data) }

// --- Large-offset layout -------------------------------------------------

// LargeOffset is the 64-bit-offset counterpart to SmallOffset, used when the
// heap may exceed the 32-bit limit.
type LargeOffset struct {
	offsets []int64
	data    []byte
}

// NewLargeOffset returns an empty large-offset buffer.
func NewLargeOffset() *LargeOffset {
	return &LargeOffset{offsets: []int64{0}}
}

func (s *LargeOffset) Len() int { return len(s.offsets) - 1 }

func (s *LargeOffset) Get(i int) []byte {
	return s.data[s.offsets[i]:s.offsets[i+1]]
}

func (s *LargeOffset) Push(v []byte) {
	s.data = append(s.data, v...)
	s.offsets = append(s.offsets, int64(len(s.data)))
}

func (s *LargeOffset) DataSizeBytes() int { return len(s.data) }

// --- German-style view layout --------------------------------------------

// View is the per-row descriptor: a 4-byte length, a 4-byte prefix, and
// either an inline tail (len <= inlineLen) or a (bufferID, offset) pair
// locating the value in the shared heap. The inline tail has its own 8-byte
// field rather than sharing space with BufferID/Offset, so a View occupies
// 24 bytes, not 16.
type View struct {
	Length   uint32
	Prefix   [4]byte
	BufferID uint32
	Offset   uint32
	Inline   [8]byte // holds tail[..length-4] when Length <= inlineLen
}

// GermanView is the view-descriptor variable-length layout. Short values
// never touch the heap; comparisons can short-circuit on (Length, Prefix)
// before following the pointer for long values.
type GermanView struct {
	views []View
	heaps [][]byte // indexed by View.BufferID; a single growing heap today
}

// NewGermanView returns an empty view-descriptor buffer.
func NewGermanView() *GermanView {
	return &GermanView{heaps: [][]byte{nil}}
}

func (g *GermanView) Len() int { return len(g.views) }

func (g *GermanView) Get(i int) []byte {
	v := g.views[i]
	if v.Length <= inlineLen {
		out := make([]byte, v.Length)
		if v.Length <= 4 {
			copy(out, v.Prefix[:v.Length])
		} else {
			copy(out[:4], v.Prefix[:])
			copy(out[4:], v.Inline[:v.Length-4])
		}
		return out
	}
	heap := g.heaps[v.BufferID]
	return heap[v.Offset : v.Offset+v.Length]
}

func (g *GermanView) Push(val []byte) {
	var v View
	v.Length = uint32(len(val))
	if v.Length <= 4 {
		copy(v.Prefix[:v.Length], val)
	} else {
		copy(v.Prefix[:], val[:4])
	}
	if v.Length <= inlineLen {
		if v.Length > 4 {
			copy(v.Inline[:v.Length-4], val[4:])
		}
	} else {
		v.BufferID = 0
		v.Offset = uint32(len(g.heaps[0]))
		g.heaps[0] = append(g.heaps[0], val...)
	}
	g.views = append(g.views, v)
}

func (g *GermanView) DataSizeBytes() int {
	total := 0
	for _, h := range g.heaps {
		total += len(h)
	}
	return total
}

// CompareViewPrefix allows kernels to short-circuit comparison using only
// the descriptor, without following the heap pointer, for the common case
// of unequal length or unequal prefix.
func CompareViewPrefix(a, b View) (equalSoFar bool) {
	return a.Length == b.Length && a.Prefix == b.Prefix
}

// --- shared helpers used by val-style binary codecs ----------------------

// PutUint32 and Uint32 mirror the encoding/binary helpers used throughout
// this package's callers for building on-disk or wire representations of
// offsets when a Varlen buffer needs to be serialized.
func PutUint32(buf []byte, v uint32) { binary.LittleEndian.PutUint32(buf, v) }
func Uint32(buf []byte) uint32       { return binary.LittleEndian.Uint32(buf) }
