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

package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopManagerAllocatesZeroed(t *testing.T) {
	buf := NopManager{}.Allocate(16)
	assert.Len(t, buf, 16)
	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
}

func TestPooledManagerReusesReleasedBuffer(t *testing.T) {
	m := NewPooledManager()
	buf := m.Allocate(32)
	buf[0] = 0xFF
	m.Release(buf)

	reused := m.Allocate(32)
	assert.Len(t, reused, 32)
	// Reused buffers must come back zeroed even though the backing array
	// previously held data.
	assert.Equal(t, byte(0), reused[0])
}

func TestPooledManagerDifferentSizesDontCollide(t *testing.T) {
	m := NewPooledManager()
	a := m.Allocate(8)
	m.Release(a)

	b := m.Allocate(16)
	assert.Len(t, b, 16)
}
