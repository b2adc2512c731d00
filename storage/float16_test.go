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

func TestFloat16RoundTrip(t *testing.T) {
	cases := []float32{0, 1, -1, 2.5, -2.5, 0.5, 100}
	for _, c := range cases {
		bits := Float32ToFloat16(c)
		got := Float16ToFloat32(bits)
		assert.InDelta(t, c, got, 0.01)
	}
}

func TestFloat16Zero(t *testing.T) {
	assert.Equal(t, float32(0), Float16ToFloat32(0))
}
