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
)

func TestSmallOffsetRoundTrip(t *testing.T) {
	s := NewSmallOffset()
	s.Push([]byte("a"))
	s.Push([]byte(""))
	s.Push([]byte("hello world"))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []byte("a"), s.Get(0))
	assert.Equal(t, []byte(""), s.Get(1))
	assert.Equal(t, []byte("hello world"), s.Get(2))
}

func TestLargeOffsetRoundTrip(t *testing.T) {
	s := NewLargeOffset()
	s.Push([]byte("short"))
	s.Push([]byte("a much longer value that still fits fine"))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []byte("short"), s.Get(0))
}

func TestGermanViewInline(t *testing.T) {
	g := NewGermanView()
	g.Push([]byte(""))
	g.Push([]byte("a"))
	g.Push([]byte("exactly12by!")) // 12 bytes, still inline

	assert.Equal(t, []byte(""), g.Get(0))
	assert.Equal(t, []byte("a"), g.Get(1))
	assert.Equal(t, []byte("exactly12by!"), g.Get(2))
	assert.Equal(t, 0, g.DataSizeBytes(), "inline values never touch the heap")
}

func TestGermanViewHeap(t *testing.T) {
	g := NewGermanView()
	long := []byte("this value is longer than the inline threshold for sure")
	g.Push(long)

	assert.Equal(t, long, g.Get(0))
	assert.Equal(t, len(long), g.DataSizeBytes())
}

func TestGermanViewPrefixShortCircuit(t *testing.T) {
	g := NewGermanView()
	g.Push([]byte("aaaa_one_long_value_here"))
	g.Push([]byte("aaaa_another_long_value"))

	va := g.views[0]
	vb := g.views[1]
	// Same 4-byte prefix but different length: prefix comparison alone
	// cannot prove equality, the full value differs.
	assert.NotEqual(t, va.Length, vb.Length)
	assert.False(t, CompareViewPrefix(va, vb))
}

func TestVarlenInterfaceSatisfied(t *testing.T) {
	var _ Varlen = NewSmallOffset()
	var _ Varlen = NewLargeOffset()
	var _ Varlen = NewGermanView()
}
