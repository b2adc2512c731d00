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

package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
)

func TestExecuteBinaryAddLiteral(t *testing.T) {
	left := array.FromSlice(datatype.NewInt32(), []int32{1, 2, 3})
	right := array.FromSlice(datatype.NewInt32(), []int32{4, 5, 6})
	out := array.NewPrimitiveBuilder[int32](datatype.NewInt32(), left.LogicalLen())

	err := ExecuteBinary(left, right, out, func(a, b int32) int32 { return a + b })
	require.NoError(t, err)

	result := out.Finish()
	for i, want := range []int32{5, 7, 9} {
		v, _ := result.LogicalValue(i)
		assert.Equal(t, want, v.Int32())
	}
}

func TestExecuteBinaryNullPropagation(t *testing.T) {
	one, three := int32(1), int32(3)
	left := array.FromOptionSlice(datatype.NewInt32(), []*int32{&one, nil, &three})
	right := array.FromSlice(datatype.NewInt32(), []int32{10, 20, 30})

	out := array.NewPrimitiveBuilder[int32](datatype.NewInt32(), left.LogicalLen())
	err := ExecuteBinary(left, right, out, func(a, b int32) int32 { return a + b })
	require.NoError(t, err)

	result := out.Finish()
	v1, _ := result.LogicalValue(1)
	assert.True(t, v1.IsNull(), "out.is_null(i) must hold whenever either input is null")
}

func TestExecuteBinaryRejectsLengthMismatch(t *testing.T) {
	left := array.FromSlice(datatype.NewInt32(), []int32{1, 2})
	right := array.FromSlice(datatype.NewInt32(), []int32{1, 2, 3})
	out := array.NewPrimitiveBuilder[int32](datatype.NewInt32(), 2)

	err := ExecuteBinary(left, right, out, func(a, b int32) int32 { return a + b })
	assert.Error(t, err)
}

func TestExecuteBinaryFallibleDivisionByZero(t *testing.T) {
	left := array.FromSlice(datatype.NewInt32(), []int32{4, 5})
	right := array.FromSlice(datatype.NewInt32(), []int32{2, 0})
	out := array.NewPrimitiveBuilder[int32](datatype.NewInt32(), 2)

	err := ExecuteBinaryFallible(left, right, out, func(a, b int32) (int32, error) {
		if b == 0 {
			return 0, assert.AnError
		}
		return a / b, nil
	})
	assert.Error(t, err)
}
